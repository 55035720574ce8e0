package wampproto

// TicketAuthenticator answers any CHALLENGE with a pre-shared ticket
// string, ignoring the challenge's contents.
type TicketAuthenticator struct {
	authid string
	ticket string
	extra  map[string]Value
}

func NewTicketAuthenticator(authid, ticket string, extra map[string]Value) *TicketAuthenticator {
	return &TicketAuthenticator{authid: authid, ticket: ticket, extra: extra}
}

func (t *TicketAuthenticator) AuthMethod() string          { return "ticket" }
func (t *TicketAuthenticator) AuthID() string              { return t.authid }
func (t *TicketAuthenticator) AuthExtra() map[string]Value { return t.extra }

func (t *TicketAuthenticator) Authenticate(*Challenge) (*Authenticate, error) {
	return &Authenticate{Signature: t.ticket, Extra: t.extra}, nil
}
