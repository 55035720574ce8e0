package wampproto

import (
	"errors"
	"fmt"
)

// errMissingOrInvalidField reports a details/options field that is either
// absent or not of the type its message kind requires.
func errMissingOrInvalidField(field string) error {
	return fmt.Errorf("missing or invalid field: %q", field)
}

// Sentinel errors a caller can test for with errors.Is. Parse and validation
// failures are not sentinels since the set of message kinds they name is
// closed and already present in the error text.
var (
	ErrUnknownCorrelation    = errors.New("received message for unknown or already-resolved request")
	ErrUnexpectedJoinerState = errors.New("message received in an unexpected joiner state")
	ErrJoinAborted           = errors.New("peer aborted the join")
	ErrInvalidFrame          = errors.New("invalid rawsocket frame")
	ErrInvalidHandshake      = errors.New("invalid rawsocket handshake")
)
