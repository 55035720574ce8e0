package wampproto

var authenticateSpec = validationSpec{minLength: 3, maxLength: 3, name: "AUTHENTICATE"}

// Authenticate carries the client's response to a Challenge.
type Authenticate struct {
	Signature string
	Extra     map[string]Value
}

func (a *Authenticate) Type() int { return MessageTypeAuthenticate }

func (a *Authenticate) Marshal() []Value {
	return []Value{IntValue(MessageTypeAuthenticate), StringValue(a.Signature), DictValue(a.Extra)}
}

func parseAuthenticate(data []Value) (Message, error) {
	if err := authenticateSpec.validate(data); err != nil {
		return nil, err
	}

	sig, ok := data[1].Str()
	if !ok {
		return nil, authenticateSpec.errInvalidMessage()
	}
	extra, ok := data[2].Dict()
	if !ok {
		return nil, authenticateSpec.errInvalidMessage()
	}

	return &Authenticate{Signature: sig, Extra: extra}, nil
}
