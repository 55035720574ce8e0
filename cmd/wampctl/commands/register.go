package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/wampproto"
)

// registerCmd joins the configured realm, registers procedure, and answers
// every INVOCATION with the canned --result payload until the command is
// interrupted or the router closes the connection.
func registerCmd() *cobra.Command {
	var resultJSON string

	cmd := &cobra.Command{
		Use:   "register <procedure>",
		Short: "Register a procedure and answer invocations with a canned result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			resultArgs, err := parseJSONArgs(resultJSON)
			if err != nil {
				return fmt.Errorf("parse --result: %w", err)
			}

			conn, serializer, details, err := joinSession(ctx, collector)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer collector.UnregisterSession(details.Realm)

			go func() {
				<-ctx.Done()
				_ = conn.Close()
			}()

			session := wampproto.NewSession(serializer, wampproto.WithMetrics(wampmetricsHook()))

			register := &wampproto.Register{
				RequestID: 1,
				Options:   map[string]wampproto.Value{},
				Procedure: args[0],
			}

			out, err := session.SendMessage(register)
			if err != nil {
				return fmt.Errorf("send register: %w", err)
			}
			if err := conn.Send(out); err != nil {
				return fmt.Errorf("write register: %w", err)
			}
			collector.IncMessagesSent("REGISTER")

			in, err := conn.Receive()
			if err != nil {
				return fmt.Errorf("receive registered: %w", err)
			}

			reply, err := session.Receive(in)
			if err != nil {
				return fmt.Errorf("invalid reply to register: %w", err)
			}

			switch r := reply.(type) {
			case *wampproto.Registered:
				collector.IncMessagesReceived("REGISTERED")
				fmt.Fprintf(cmd.OutOrStdout(), "registered, registration_id=%d\n", r.RegistrationID)

			case *wampproto.ErrorMessage:
				collector.IncMessagesReceived("ERROR")
				return fmt.Errorf("register failed: %s", r.URI)

			default:
				return fmt.Errorf("unexpected reply kind %T to REGISTER", reply)
			}

			for {
				in, err := conn.Receive()
				if err != nil {
					if ctx.Err() != nil {
						fmt.Fprintln(cmd.OutOrStdout(), "register cancelled")
						return nil
					}
					return fmt.Errorf("receive invocation: %w", err)
				}

				msg, err := session.Receive(in)
				if err != nil {
					return fmt.Errorf("invalid invocation: %w", err)
				}

				invocation, ok := msg.(*wampproto.Invocation)
				if !ok {
					return fmt.Errorf("unexpected message kind %T while registered", msg)
				}
				collector.IncMessagesReceived("INVOCATION")

				fmt.Fprintf(cmd.OutOrStdout(), "invocation request_id=%d\n", invocation.RequestID)

				yield := &wampproto.Yield{
					RequestID: invocation.RequestID,
					Options:   map[string]wampproto.Value{},
					Args:      resultArgs,
					HasArgs:   len(resultArgs) > 0,
				}

				out, err := session.SendMessage(yield)
				if err != nil {
					return fmt.Errorf("build yield: %w", err)
				}
				if err := conn.Send(out); err != nil {
					return fmt.Errorf("write yield: %w", err)
				}
				collector.IncMessagesSent("YIELD")
			}
		},
	}

	cmd.Flags().StringVar(&resultJSON, "result", "[]", "result arguments to yield for every invocation, as a JSON array")

	return cmd
}
