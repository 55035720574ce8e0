package wampproto

var invocationSpec = validationSpec{minLength: 4, maxLength: 6, name: "INVOCATION"}

// Invocation asks a callee to execute a procedure on the caller's behalf.
type Invocation struct {
	RequestID      int64
	RegistrationID int64
	Details        map[string]Value
	Args           []Value
	HasArgs        bool
	Kwargs         map[string]Value
	HasKwargs      bool
}

func (i *Invocation) Type() int { return MessageTypeInvocation }

func (i *Invocation) Marshal() []Value {
	head := []Value{
		IntValue(MessageTypeInvocation), IntValue(i.RequestID), IntValue(i.RegistrationID), DictValue(i.Details),
	}
	return marshalArgsKwargs(head, i.Args, i.HasArgs, i.Kwargs, i.HasKwargs)
}

func parseInvocation(data []Value) (Message, error) {
	if err := invocationSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, invocationSpec.errInvalidMessage()
	}
	registrationID, ok := data[2].Int()
	if !ok {
		return nil, invocationSpec.errInvalidMessage()
	}
	details, ok := data[3].Dict()
	if !ok {
		return nil, invocationSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 4, invocationSpec)
	if err != nil {
		return nil, err
	}

	return &Invocation{
		RequestID: requestID, RegistrationID: registrationID, Details: details,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
