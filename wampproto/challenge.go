package wampproto

var challengeSpec = validationSpec{minLength: 3, maxLength: 3, name: "CHALLENGE"}

// Challenge asks the client to authenticate using the negotiated method.
type Challenge struct {
	AuthMethod string
	Extra      map[string]Value
}

func (c *Challenge) Type() int { return MessageTypeChallenge }

func (c *Challenge) Marshal() []Value {
	return []Value{IntValue(MessageTypeChallenge), StringValue(c.AuthMethod), DictValue(c.Extra)}
}

func parseChallenge(data []Value) (Message, error) {
	if err := challengeSpec.validate(data); err != nil {
		return nil, err
	}

	method, ok := data[1].Str()
	if !ok {
		return nil, challengeSpec.errInvalidMessage()
	}
	extra, ok := data[2].Dict()
	if !ok {
		return nil, challengeSpec.errInvalidMessage()
	}

	return &Challenge{AuthMethod: method, Extra: extra}, nil
}
