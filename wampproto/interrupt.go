package wampproto

var interruptSpec = validationSpec{minLength: 3, maxLength: 3, name: "INTERRUPT"}

// Interrupt asks a callee to abandon a running Invocation.
type Interrupt struct {
	RequestID int64
	Options   map[string]Value
}

func (i *Interrupt) Type() int { return MessageTypeInterrupt }

func (i *Interrupt) Marshal() []Value {
	return []Value{IntValue(MessageTypeInterrupt), IntValue(i.RequestID), DictValue(i.Options)}
}

func parseInterrupt(data []Value) (Message, error) {
	if err := interruptSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, interruptSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, interruptSpec.errInvalidMessage()
	}

	return &Interrupt{RequestID: requestID, Options: options}, nil
}
