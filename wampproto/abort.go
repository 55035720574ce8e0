package wampproto

var abortSpec = validationSpec{minLength: 3, maxLength: 5, name: "ABORT"}

// Abort terminates a session attempt before it completes.
type Abort struct {
	Details  map[string]Value
	Reason   string
	Args     []Value
	HasArgs  bool
	Kwargs   map[string]Value
	HasKwargs bool
}

func (a *Abort) Type() int { return MessageTypeAbort }

func (a *Abort) Marshal() []Value {
	head := []Value{IntValue(MessageTypeAbort), DictValue(a.Details), StringValue(a.Reason)}
	return marshalArgsKwargs(head, a.Args, a.HasArgs, a.Kwargs, a.HasKwargs)
}

func parseAbort(data []Value) (Message, error) {
	if err := abortSpec.validate(data); err != nil {
		return nil, err
	}

	details, ok := data[1].Dict()
	if !ok {
		return nil, abortSpec.errInvalidMessage()
	}
	reason, ok := data[2].Str()
	if !ok {
		return nil, abortSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 3, abortSpec)
	if err != nil {
		return nil, err
	}

	return &Abort{
		Details: details, Reason: reason,
		Args: args, HasArgs: hasArgs,
		Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
