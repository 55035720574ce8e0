package wampproto

var registerSpec = validationSpec{minLength: 4, maxLength: 4, name: "REGISTER"}

// Register asks the router to register a procedure for this session.
type Register struct {
	RequestID int64
	Options   map[string]Value
	Procedure string
}

func (r *Register) Type() int { return MessageTypeRegister }

func (r *Register) Marshal() []Value {
	return []Value{IntValue(MessageTypeRegister), IntValue(r.RequestID), DictValue(r.Options), StringValue(r.Procedure)}
}

func parseRegister(data []Value) (Message, error) {
	if err := registerSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, registerSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, registerSpec.errInvalidMessage()
	}
	procedure, ok := data[3].Str()
	if !ok {
		return nil, registerSpec.errInvalidMessage()
	}

	return &Register{RequestID: requestID, Options: options, Procedure: procedure}, nil
}
