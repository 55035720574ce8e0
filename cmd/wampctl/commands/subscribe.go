package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/wampproto"
)

// subscribeCmd joins the configured realm, subscribes to topic, and prints
// every EVENT as it arrives until the command is interrupted (SIGINT/
// SIGTERM) or the router closes the connection.
func subscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe <topic>",
		Short: "Subscribe to a topic and print events as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			conn, serializer, details, err := joinSession(ctx, collector)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer collector.UnregisterSession(details.Realm)

			// Receive has no context parameter of its own; closing conn
			// from this goroutine is what unblocks it once ctx is done,
			// the same way a SIGINT/SIGTERM unwinds any other blocking
			// read in this CLI.
			go func() {
				<-ctx.Done()
				_ = conn.Close()
			}()

			session := wampproto.NewSession(serializer, wampproto.WithMetrics(wampmetricsHook()))

			subscribe := &wampproto.Subscribe{
				RequestID: 1,
				Options:   map[string]wampproto.Value{},
				Topic:     args[0],
			}

			out, err := session.SendMessage(subscribe)
			if err != nil {
				return fmt.Errorf("send subscribe: %w", err)
			}
			if err := conn.Send(out); err != nil {
				return fmt.Errorf("write subscribe: %w", err)
			}
			collector.IncMessagesSent("SUBSCRIBE")

			in, err := conn.Receive()
			if err != nil {
				return fmt.Errorf("receive subscribed: %w", err)
			}

			reply, err := session.Receive(in)
			if err != nil {
				return fmt.Errorf("invalid reply to subscribe: %w", err)
			}

			switch r := reply.(type) {
			case *wampproto.Subscribed:
				collector.IncMessagesReceived("SUBSCRIBED")
				fmt.Fprintf(cmd.OutOrStdout(), "subscribed, subscription_id=%d\n", r.SubscriptionID)

			case *wampproto.ErrorMessage:
				collector.IncMessagesReceived("ERROR")
				return fmt.Errorf("subscribe failed: %s", r.URI)

			default:
				return fmt.Errorf("unexpected reply kind %T to SUBSCRIBE", reply)
			}

			for {
				in, err := conn.Receive()
				if err != nil {
					if ctx.Err() != nil {
						fmt.Fprintln(cmd.OutOrStdout(), "subscribe cancelled")
						return nil
					}
					return fmt.Errorf("receive event: %w", err)
				}

				msg, err := session.Receive(in)
				if err != nil {
					return fmt.Errorf("invalid event: %w", err)
				}

				event, ok := msg.(*wampproto.Event)
				if !ok {
					return fmt.Errorf("unexpected message kind %T while subscribed", msg)
				}
				collector.IncMessagesReceived("EVENT")

				text, err := formatValues(event.Args, event.Kwargs, format)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
			}
		},
	}

	return cmd
}
