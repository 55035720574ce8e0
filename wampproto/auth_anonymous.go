package wampproto

import "errors"

// AnonymousAuthenticator never expects a CHALLENGE: the router admits the
// session on HELLO alone.
type AnonymousAuthenticator struct {
	authid string
	extra  map[string]Value
}

func NewAnonymousAuthenticator(authid string, extra map[string]Value) *AnonymousAuthenticator {
	return &AnonymousAuthenticator{authid: authid, extra: extra}
}

func (a *AnonymousAuthenticator) AuthMethod() string          { return "anonymous" }
func (a *AnonymousAuthenticator) AuthID() string              { return a.authid }
func (a *AnonymousAuthenticator) AuthExtra() map[string]Value { return a.extra }

func (a *AnonymousAuthenticator) Authenticate(*Challenge) (*Authenticate, error) {
	return nil, errors.New("authenticate() must not be called for anonymous authentication")
}
