package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/wampproto"
)

// callCmd joins the configured realm, issues one CALL, prints the RESULT
// (or the ERROR), and exits.
func callCmd() *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "call <procedure>",
		Short: "Call a procedure and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := parseJSONArgs(argsJSON)
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

			call := &wampproto.Call{
				RequestID: 1,
				Options:   map[string]wampproto.Value{},
				Procedure: args[0],
				Args:      callArgs,
				HasArgs:   len(callArgs) > 0,
			}

			out, err := session.SendMessage(call)
			if err != nil {
				return fmt.Errorf("send call: %w", err)
			}
			if err := conn.Send(out); err != nil {
				return fmt.Errorf("write call: %w", err)
			}
			collector.IncMessagesSent("CALL")

			in, err := conn.Receive()
			if err != nil {
				return fmt.Errorf("receive reply: %w", err)
			}

			reply, err := session.Receive(in)
			if err != nil {
				return fmt.Errorf("invalid reply: %w", err)
			}

			switch r := reply.(type) {
			case *wampproto.Result:
				collector.IncMessagesReceived("RESULT")
				text, err := formatValues(r.Args, r.Kwargs, format)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)

			case *wampproto.ErrorMessage:
				collector.IncMessagesReceived("ERROR")
				return fmt.Errorf("call failed: %s", r.URI)

			default:
				return fmt.Errorf("unexpected reply kind %T to CALL", reply)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "[]", "positional call arguments, as a JSON array")

	return cmd
}

// parseJSONArgs decodes a JSON array into Values, rejecting anything that
// isn't a JSON array (an object or scalar has no positional meaning here).
func parseJSONArgs(s string) ([]wampproto.Value, error) {
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("args must be a JSON array, got %s", s)
	}

	out := make([]wampproto.Value, 0, len(raw))
	for _, v := range raw {
		out = append(out, anyToValue(v))
	}

	return out, nil
}

func anyToValue(v any) wampproto.Value {
	switch t := v.(type) {
	case nil:
		return wampproto.NullValue()
	case bool:
		return wampproto.BoolValue(t)
	case float64:
		if t == float64(int64(t)) {
			return wampproto.IntValue(int64(t))
		}
		return wampproto.FloatValue(t)
	case string:
		return wampproto.StringValue(t)
	case []any:
		l := make([]wampproto.Value, 0, len(t))
		for _, e := range t {
			l = append(l, anyToValue(e))
		}
		return wampproto.ListValue(l)
	case map[string]any:
		d := make(map[string]wampproto.Value, len(t))
		for k, e := range t {
			d[k] = anyToValue(e)
		}
		return wampproto.DictValue(d)
	default:
		return wampproto.NullValue()
	}
}
