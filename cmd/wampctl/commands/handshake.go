package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xconnio/wampproto-go/internal/wamptransport"
)

// handshakeCmd opens a rawsocket connection, performs the 4-byte
// handshake, and prints what the peer agreed to. It never sends HELLO:
// useful for checking that a router is reachable and speaks the expected
// serializer before attempting a full join.
func handshakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handshake",
		Short: "Perform the rawsocket handshake against the configured router and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, serializerID, err := buildSerializer(cfg)
			if err != nil {
				return err
			}

			conn, err := wamptransport.Dial(cmd.Context(), cfg.Transport.Addr, serializerID, cfg.Transport.MaxMessageSize)
			if err != nil {
				return fmt.Errorf("handshake: %w", err)
			}
			defer conn.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "handshake ok: serializer=%s max_message_size=%d\n",
				cfg.Transport.Serializer, conn.MaxMessageSize())

			return nil
		},
	}
}
