// Package config manages wampctl configuration using koanf/v2.
//
// Supports YAML files, environment variables, and CLI flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete wampctl configuration.
type Config struct {
	Transport TransportConfig `koanf:"transport"`
	Session   SessionConfig   `koanf:"session"`
	Auth      AuthConfig      `koanf:"auth"`
	Log       LogConfig       `koanf:"log"`
}

// TransportConfig holds the rawsocket connection configuration.
type TransportConfig struct {
	// Addr is the router's rawsocket listen address (e.g., "127.0.0.1:8080").
	Addr string `koanf:"addr"`
	// Serializer selects the wire codec: "cbor" or "msgpack".
	Serializer string `koanf:"serializer"`
	// MaxMessageSize is the largest message this client will accept,
	// advertised during the rawsocket handshake.
	MaxMessageSize int `koanf:"max_message_size"`
}

// SessionConfig holds the realm a session joins.
type SessionConfig struct {
	// Realm is the WAMP realm to join.
	Realm string `koanf:"realm"`
}

// AuthConfig holds the client authentication parameters.
type AuthConfig struct {
	// Method selects the authenticator: "anonymous", "ticket", "wampcra",
	// or "cryptosign".
	Method string `koanf:"method"`
	// AuthID is the identity presented in HELLO.
	AuthID string `koanf:"authid"`
	// Ticket is the pre-shared secret for the ticket method.
	Ticket string `koanf:"ticket"`
	// Secret is the shared secret for the wampcra method.
	Secret string `koanf:"secret"`
	// PrivateKey is the 32-byte hex Ed25519 seed for the cryptosign method.
	PrivateKey string `koanf:"private_key"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportConfig{
			Addr:           "127.0.0.1:8080",
			Serializer:     "cbor",
			MaxMessageSize: 1 << 20,
		},
		Session: SessionConfig{
			Realm: "realm1",
		},
		Auth: AuthConfig{
			Method: "anonymous",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for wampctl configuration.
// Variables are named WAMPCTL_<section>_<key>, e.g., WAMPCTL_TRANSPORT_ADDR.
const envPrefix = "WAMPCTL_"

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (WAMPCTL_ prefix), and merges on top of
// DefaultConfig(). Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	WAMPCTL_TRANSPORT_ADDR   -> transport.addr
//	WAMPCTL_SESSION_REALM    -> session.realm
//	WAMPCTL_AUTH_METHOD      -> auth.method
//	WAMPCTL_LOG_LEVEL        -> log.level
//	WAMPCTL_LOG_FORMAT       -> log.format
//
// Uses koanf/v2 with file + env providers and YAML parser.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms WAMPCTL_TRANSPORT_ADDR -> transport.addr.
// Strips the WAMPCTL_ prefix, lowercases, and replaces _ with .
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"transport.addr":             defaults.Transport.Addr,
		"transport.serializer":       defaults.Transport.Serializer,
		"transport.max_message_size": defaults.Transport.MaxMessageSize,
		"session.realm":              defaults.Session.Realm,
		"auth.method":                defaults.Auth.Method,
		"log.level":                  defaults.Log.Level,
		"log.format":                 defaults.Log.Format,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrEmptyTransportAddr indicates the rawsocket address is empty.
	ErrEmptyTransportAddr = errors.New("transport.addr must not be empty")

	// ErrInvalidSerializer indicates an unrecognized serializer name.
	ErrInvalidSerializer = errors.New("transport.serializer must be cbor or msgpack")

	// ErrInvalidMaxMessageSize indicates a non-positive max message size.
	ErrInvalidMaxMessageSize = errors.New("transport.max_message_size must be > 0")

	// ErrEmptyRealm indicates the session realm is empty.
	ErrEmptyRealm = errors.New("session.realm must not be empty")

	// ErrInvalidAuthMethod indicates an unrecognized auth method.
	ErrInvalidAuthMethod = errors.New("auth.method must be anonymous, ticket, wampcra, or cryptosign")

	// ErrMissingTicket indicates the ticket method is selected without a ticket.
	ErrMissingTicket = errors.New("auth.ticket must be set when auth.method is ticket")

	// ErrMissingSecret indicates the wampcra method is selected without a secret.
	ErrMissingSecret = errors.New("auth.secret must be set when auth.method is wampcra")

	// ErrMissingPrivateKey indicates the cryptosign method is selected
	// without a private key.
	ErrMissingPrivateKey = errors.New("auth.private_key must be set when auth.method is cryptosign")
)

// ValidSerializers lists the recognized serializer name strings.
var ValidSerializers = map[string]bool{
	"cbor":    true,
	"msgpack": true,
}

// ValidAuthMethods lists the recognized auth method strings.
var ValidAuthMethods = map[string]bool{
	"anonymous":  true,
	"ticket":     true,
	"wampcra":    true,
	"cryptosign": true,
}

// Validate checks the configuration for logical errors.
// Returns the first validation error encountered.
func Validate(cfg *Config) error {
	if cfg.Transport.Addr == "" {
		return ErrEmptyTransportAddr
	}
	if !ValidSerializers[cfg.Transport.Serializer] {
		return ErrInvalidSerializer
	}
	if cfg.Transport.MaxMessageSize <= 0 {
		return ErrInvalidMaxMessageSize
	}
	if cfg.Session.Realm == "" {
		return ErrEmptyRealm
	}
	if !ValidAuthMethods[cfg.Auth.Method] {
		return ErrInvalidAuthMethod
	}

	switch cfg.Auth.Method {
	case "ticket":
		if cfg.Auth.Ticket == "" {
			return ErrMissingTicket
		}
	case "wampcra":
		if cfg.Auth.Secret == "" {
			return ErrMissingSecret
		}
	case "cryptosign":
		if cfg.Auth.PrivateKey == "" {
			return ErrMissingPrivateKey
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
