package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/wampproto"
)

// publishCmd joins the configured realm and publishes one event to topic.
// With --ack it waits for PUBLISHED before exiting; otherwise it fires
// and forgets.
func publishCmd() *cobra.Command {
	var (
		argsJSON string
		ack      bool
	)

	cmd := &cobra.Command{
		Use:   "publish <topic>",
		Short: "Publish an event to a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubArgs, err := parseJSONArgs(argsJSON)
			if err != nil {
				return fmt.Errorf("parse --args: %w", err)
			}

			conn, serializer, details, err := joinSession(cmd.Context(), collector)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer collector.UnregisterSession(details.Realm)

			session := wampproto.NewSession(serializer, wampproto.WithMetrics(wampmetricsHook()))

			options := map[string]wampproto.Value{}
			if ack {
				options["acknowledge"] = wampproto.BoolValue(true)
			}

			publish := &wampproto.Publish{
				RequestID: 1,
				Options:   options,
				Topic:     args[0],
				Args:      pubArgs,
				HasArgs:   len(pubArgs) > 0,
			}

			out, err := session.SendMessage(publish)
			if err != nil {
				return fmt.Errorf("send publish: %w", err)
			}
			if err := conn.Send(out); err != nil {
				return fmt.Errorf("write publish: %w", err)
			}
			collector.IncMessagesSent("PUBLISH")

			if !ack {
				fmt.Fprintf(cmd.OutOrStdout(), "published to %q\n", args[0])
				return nil
			}

			in, err := conn.Receive()
			if err != nil {
				return fmt.Errorf("receive reply: %w", err)
			}

			reply, err := session.Receive(in)
			if err != nil {
				return fmt.Errorf("invalid reply: %w", err)
			}

			switch r := reply.(type) {
			case *wampproto.Published:
				collector.IncMessagesReceived("PUBLISHED")
				fmt.Fprintf(cmd.OutOrStdout(), "published, publication_id=%d\n", r.PublicationID)

			case *wampproto.ErrorMessage:
				collector.IncMessagesReceived("ERROR")
				return fmt.Errorf("publish failed: %s", r.URI)

			default:
				return fmt.Errorf("unexpected reply kind %T to PUBLISH", reply)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "[]", "positional event payload, as a JSON array")
	cmd.Flags().BoolVar(&ack, "ack", false, "wait for PUBLISHED before exiting")

	return cmd
}
