package wampproto

import "fmt"

// validationSpec gates a message's length before its shape is matched
// against optional args/kwargs tails. Every message kind below declares
// exactly one of these.
type validationSpec struct {
	minLength int
	maxLength int
	name      string
}

func (s validationSpec) errInvalidMessage() error {
	return fmt.Errorf("%s received invalid message format", s.name)
}

func (s validationSpec) validate(data []Value) error {
	if len(data) < s.minLength {
		return fmt.Errorf("unexpected message length for %s: must be at least %d, but was %d",
			s.name, s.minLength, len(data))
	}
	if len(data) > s.maxLength {
		return fmt.Errorf("unexpected message length for %s, must be at most %d, but was %d",
			s.name, s.maxLength, len(data))
	}
	return nil
}
