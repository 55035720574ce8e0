package wampproto

var resultSpec = validationSpec{minLength: 3, maxLength: 5, name: "RESULT"}

// Result carries a Call's successful return value.
type Result struct {
	RequestID int64
	Details   map[string]Value
	Args      []Value
	HasArgs   bool
	Kwargs    map[string]Value
	HasKwargs bool
}

func (r *Result) Type() int { return MessageTypeResult }

func (r *Result) Marshal() []Value {
	head := []Value{IntValue(MessageTypeResult), IntValue(r.RequestID), DictValue(r.Details)}
	return marshalArgsKwargs(head, r.Args, r.HasArgs, r.Kwargs, r.HasKwargs)
}

func parseResult(data []Value) (Message, error) {
	if err := resultSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, resultSpec.errInvalidMessage()
	}
	details, ok := data[2].Dict()
	if !ok {
		return nil, resultSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 3, resultSpec)
	if err != nil {
		return nil, err
	}

	return &Result{
		RequestID: requestID, Details: details,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
