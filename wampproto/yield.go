package wampproto

var yieldSpec = validationSpec{minLength: 3, maxLength: 5, name: "YIELD"}

// Yield carries a callee's return value for an Invocation.
type Yield struct {
	RequestID int64
	Options   map[string]Value
	Args      []Value
	HasArgs   bool
	Kwargs    map[string]Value
	HasKwargs bool
}

func (y *Yield) Type() int { return MessageTypeYield }

func (y *Yield) Marshal() []Value {
	head := []Value{IntValue(MessageTypeYield), IntValue(y.RequestID), DictValue(y.Options)}
	return marshalArgsKwargs(head, y.Args, y.HasArgs, y.Kwargs, y.HasKwargs)
}

func parseYield(data []Value) (Message, error) {
	if err := yieldSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, yieldSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, yieldSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 3, yieldSpec)
	if err != nil {
		return nil, err
	}

	return &Yield{
		RequestID: requestID, Options: options,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
