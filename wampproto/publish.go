package wampproto

var publishSpec = validationSpec{minLength: 4, maxLength: 6, name: "PUBLISH"}

// Publish asks the router to dispatch an event to a topic's subscribers.
type Publish struct {
	RequestID int64
	Options   map[string]Value
	Topic     string
	Args      []Value
	HasArgs   bool
	Kwargs    map[string]Value
	HasKwargs bool
}

func (p *Publish) Type() int { return MessageTypePublish }

func (p *Publish) Marshal() []Value {
	head := []Value{IntValue(MessageTypePublish), IntValue(p.RequestID), DictValue(p.Options), StringValue(p.Topic)}
	return marshalArgsKwargs(head, p.Args, p.HasArgs, p.Kwargs, p.HasKwargs)
}

func parsePublish(data []Value) (Message, error) {
	if err := publishSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, publishSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, publishSpec.errInvalidMessage()
	}
	topic, ok := data[3].Str()
	if !ok {
		return nil, publishSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 4, publishSpec)
	if err != nil {
		return nil, err
	}

	return &Publish{
		RequestID: requestID, Options: options, Topic: topic,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
