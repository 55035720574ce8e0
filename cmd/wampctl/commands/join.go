package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/internal/wampmetrics"
	"github.com/xconnio/wampproto-go/internal/wamptransport"
	"github.com/xconnio/wampproto-go/wampproto"
)

// joinSession dials cfg.Transport.Addr, negotiates the rawsocket
// handshake, and drives the HELLO/CHALLENGE/AUTHENTICATE/WELCOME
// handshake to completion. It returns the open transport connection, the
// negotiated serializer (needed by callers that go on to build a
// wampproto.Session over the same wire), and the joined session's
// details.
func joinSession(
	ctx context.Context,
	collector *wampmetrics.Collector,
) (*wamptransport.Conn, wampproto.Serializer, *wampproto.SessionDetails, error) {
	serializer, serializerID, err := buildSerializer(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	authenticator, err := buildAuthenticator(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	conn, err := wamptransport.Dial(ctx, cfg.Transport.Addr, serializerID, cfg.Transport.MaxMessageSize)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dial %s: %w", cfg.Transport.Addr, err)
	}

	collector.RecordJoinAttempt(cfg.Session.Realm, cfg.Auth.Method)

	joiner := wampproto.NewJoiner(cfg.Session.Realm, serializer, authenticator)

	hello, err := joiner.SendHello()
	if err != nil {
		_ = conn.Close()
		collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)

		return nil, nil, nil, fmt.Errorf("build hello: %w", err)
	}
	if err := conn.Send(hello); err != nil {
		_ = conn.Close()
		collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)

		return nil, nil, nil, fmt.Errorf("send hello: %w", err)
	}
	collector.IncMessagesSent("HELLO")

	for {
		in, err := conn.Receive()
		if err != nil {
			_ = conn.Close()
			collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)

			return nil, nil, nil, fmt.Errorf("receive during join: %w", err)
		}

		out, err := joiner.Receive(in)
		if err != nil {
			_ = conn.Close()
			collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)
			collector.IncAuthFailures(cfg.Session.Realm, cfg.Auth.Method)

			return nil, nil, nil, fmt.Errorf("join handshake: %w", err)
		}

		if out != nil {
			if err := conn.Send(out); err != nil {
				_ = conn.Close()
				collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)

				return nil, nil, nil, fmt.Errorf("send authenticate: %w", err)
			}
			collector.IncMessagesSent("AUTHENTICATE")

			continue
		}

		details, err := joiner.SessionDetails()
		if err != nil {
			// Receive returned nil with no error only once WELCOME has
			// landed, so this should be unreachable; treat it as a join
			// failure rather than panicking on a nil details pointer.
			_ = conn.Close()
			collector.RecordJoinFailure(cfg.Session.Realm, cfg.Auth.Method)

			return nil, nil, nil, fmt.Errorf("join completed without session details: %w", err)
		}

		collector.RegisterSession(details.Realm)
		logger.Info("session joined",
			"realm", details.Realm,
			"session_id", details.SessionID,
			"authid", details.AuthID,
			"authrole", details.AuthRole,
		)

		return conn, serializer, details, nil
	}
}

// joinCmd dials the router, completes the join handshake, prints the
// resulting session details, then closes the connection. It exists for
// manually verifying a realm/auth-method combination; the call/publish/
// subscribe/register commands perform their own join before the
// operation they execute.
func joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Join a realm and print the resulting session details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, _, details, err := joinSession(cmd.Context(), collector)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer collector.UnregisterSession(details.Realm)

			out, err := formatSessionDetails(details, format)
			if err != nil {
				return fmt.Errorf("format session details: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
