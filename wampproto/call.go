package wampproto

// callSpec mirrors PUBLISH's shape (request_id, options, <target>, args?,
// kwargs?) with procedure in place of topic. Not present in the retrieved
// original_source/ excerpt; hand-authored from spec.md's message table —
// see DESIGN.md.
var callSpec = validationSpec{minLength: 4, maxLength: 6, name: "CALL"}

// Call invokes a registered procedure.
type Call struct {
	RequestID int64
	Options   map[string]Value
	Procedure string
	Args      []Value
	HasArgs   bool
	Kwargs    map[string]Value
	HasKwargs bool
}

func (c *Call) Type() int { return MessageTypeCall }

func (c *Call) Marshal() []Value {
	head := []Value{IntValue(MessageTypeCall), IntValue(c.RequestID), DictValue(c.Options), StringValue(c.Procedure)}
	return marshalArgsKwargs(head, c.Args, c.HasArgs, c.Kwargs, c.HasKwargs)
}

func parseCall(data []Value) (Message, error) {
	if err := callSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, callSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, callSpec.errInvalidMessage()
	}
	procedure, ok := data[3].Str()
	if !ok {
		return nil, callSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 4, callSpec)
	if err != nil {
		return nil, err
	}

	return &Call{
		RequestID: requestID, Options: options, Procedure: procedure,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
