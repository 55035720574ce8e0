// Package commands implements the wampctl CLI commands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/internal/config"
	"github.com/xconnio/wampproto-go/internal/wampmetrics"
)

// cfg holds the merged configuration for the current invocation, built in
// PersistentPreRunE from defaults, an optional config file, environment
// variables and the flags below, in that precedence order.
var cfg *config.Config

// logger is the process-wide structured logger, created once cfg is known.
var logger *slog.Logger

// collector is rebuilt on a fresh prometheus.Registry for every command
// invocation, so running wampctl repeatedly from the shell REPL never
// trips a duplicate-registration panic against a shared default
// registerer.
var collector *wampmetrics.Collector

// Flags bound directly to the root command; these override whatever cfg
// picked up from file/env when set explicitly.
var (
	configPath string
	addr       string
	realm      string
	serializer string
	authMethod string
	authID     string
	ticket     string
	secret     string
	privateKey string
	format     string
)

var rootCmd = &cobra.Command{
	Use:   "wampctl",
	Short: "CLI client for driving a WAMP router over rawsocket",
	Long:  "wampctl exercises wampproto-go against a WAMP router for manual testing: handshake, join, call, publish, subscribe, register, version, and an interactive shell.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		applyFlagOverrides(loaded)

		if err := config.Validate(loaded); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		cfg = loaded
		logger = newLogger(cfg.Log)
		collector = wampmetrics.NewCollector(prometheus.NewRegistry())

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// applyFlagOverrides copies any root flag the user actually set on top of
// the config loaded from file/env/defaults.
func applyFlagOverrides(c *config.Config) {
	if addr != "" {
		c.Transport.Addr = addr
	}
	if realm != "" {
		c.Session.Realm = realm
	}
	if serializer != "" {
		c.Transport.Serializer = serializer
	}
	if authMethod != "" {
		c.Auth.Method = authMethod
	}
	if authID != "" {
		c.Auth.AuthID = authID
	}
	if ticket != "" {
		c.Auth.Ticket = ticket
	}
	if secret != "" {
		c.Auth.Secret = secret
	}
	if privateKey != "" {
		c.Auth.PrivateKey = privateKey
	}
}

// wampmetricsHook adapts the current invocation's collector to
// wampproto.MetricsHook for wampproto.WithMetrics.
func wampmetricsHook() *wampmetrics.CorrelationHook {
	return wampmetrics.NewCorrelationHook(collector)
}

func newLogger(c config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.ParseLogLevel(c.Level)}

	var handler slog.Handler
	switch c.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to configuration file (YAML)")
	flags.StringVar(&addr, "addr", "", "router address (host:port)")
	flags.StringVar(&realm, "realm", "", "realm to join")
	flags.StringVar(&serializer, "serializer", "", "wire serializer: cbor or msgpack")
	flags.StringVar(&authMethod, "auth-method", "", "authentication method: anonymous, ticket, wampcra, cryptosign")
	flags.StringVar(&authID, "authid", "", "authentication ID")
	flags.StringVar(&ticket, "ticket", "", "ticket authenticator secret")
	flags.StringVar(&secret, "secret", "", "wampcra authenticator secret")
	flags.StringVar(&privateKey, "private-key", "", "cryptosign authenticator private key (hex)")
	flags.StringVar(&format, "format", "table", "output format: table, json")

	rootCmd.AddCommand(handshakeCmd())
	rootCmd.AddCommand(joinCmd())
	rootCmd.AddCommand(callCmd())
	rootCmd.AddCommand(publishCmd())
	rootCmd.AddCommand(subscribeCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(versionCmd())
}

// Execute runs the root command and exits with code 1 on error. The root
// context is cancelled on SIGINT/SIGTERM so long-running commands such as
// subscribe and register can unwind their receive loops and close the
// connection cleanly instead of being killed mid-write.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
