package wampproto

var goodbyeSpec = validationSpec{minLength: 3, maxLength: 3, name: "GOODBYE"}

// Goodbye closes a session, either end initiating.
type Goodbye struct {
	Details map[string]Value
	Reason  string
}

func (g *Goodbye) Type() int { return MessageTypeGoodbye }

func (g *Goodbye) Marshal() []Value {
	return []Value{IntValue(MessageTypeGoodbye), DictValue(g.Details), StringValue(g.Reason)}
}

func parseGoodbye(data []Value) (Message, error) {
	if err := goodbyeSpec.validate(data); err != nil {
		return nil, err
	}

	details, ok := data[1].Dict()
	if !ok {
		return nil, goodbyeSpec.errInvalidMessage()
	}
	reason, ok := data[2].Str()
	if !ok {
		return nil, goodbyeSpec.errInvalidMessage()
	}

	return &Goodbye{Details: details, Reason: reason}, nil
}
