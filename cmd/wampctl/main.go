// Command wampctl drives a WAMP router over rawsocket for manual testing:
// handshake, join, call, publish, subscribe, register, and an interactive
// shell wrapping all of the above.
package main

import "github.com/xconnio/wampproto-go/cmd/wampctl/commands"

func main() {
	commands.Execute()
}
