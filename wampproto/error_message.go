package wampproto

var errorMessageSpec = validationSpec{minLength: 5, maxLength: 7, name: "ERROR"}

// ErrorMessage is the ERROR kind (named to avoid shadowing the builtin
// error interface): a negative reply to a CALL/REGISTER/UNREGISTER/
// SUBSCRIBE/UNSUBSCRIBE/PUBLISH/INVOCATION request.
type ErrorMessage struct {
	MessageType int
	RequestID   int64
	Options     map[string]Value
	URI         string
	Args        []Value
	HasArgs     bool
	Kwargs      map[string]Value
	HasKwargs   bool
}

func (e *ErrorMessage) Type() int { return MessageTypeError }

func (e *ErrorMessage) Marshal() []Value {
	head := []Value{
		IntValue(MessageTypeError),
		IntValue(int64(e.MessageType)),
		IntValue(e.RequestID),
		DictValue(e.Options),
		StringValue(e.URI),
	}
	return marshalArgsKwargs(head, e.Args, e.HasArgs, e.Kwargs, e.HasKwargs)
}

func parseError(data []Value) (Message, error) {
	if err := errorMessageSpec.validate(data); err != nil {
		return nil, err
	}

	msgType, ok := data[1].Int()
	if !ok {
		return nil, errorMessageSpec.errInvalidMessage()
	}
	requestID, ok := data[2].Int()
	if !ok {
		return nil, errorMessageSpec.errInvalidMessage()
	}
	options, ok := data[3].Dict()
	if !ok {
		return nil, errorMessageSpec.errInvalidMessage()
	}
	uri, ok := data[4].Str()
	if !ok {
		return nil, errorMessageSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 5, errorMessageSpec)
	if err != nil {
		return nil, err
	}

	return &ErrorMessage{
		MessageType: int(msgType), RequestID: requestID, Options: options, URI: uri,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
