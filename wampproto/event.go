package wampproto

var eventSpec = validationSpec{minLength: 4, maxLength: 6, name: "EVENT"}

// Event delivers a published payload to a subscriber.
type Event struct {
	SubscriptionID int64
	PublicationID  int64
	Details        map[string]Value
	Args           []Value
	HasArgs        bool
	Kwargs         map[string]Value
	HasKwargs      bool
}

func (e *Event) Type() int { return MessageTypeEvent }

func (e *Event) Marshal() []Value {
	head := []Value{
		IntValue(MessageTypeEvent), IntValue(e.SubscriptionID), IntValue(e.PublicationID), DictValue(e.Details),
	}
	return marshalArgsKwargs(head, e.Args, e.HasArgs, e.Kwargs, e.HasKwargs)
}

func parseEvent(data []Value) (Message, error) {
	if err := eventSpec.validate(data); err != nil {
		return nil, err
	}

	subscriptionID, ok := data[1].Int()
	if !ok {
		return nil, eventSpec.errInvalidMessage()
	}
	publicationID, ok := data[2].Int()
	if !ok {
		return nil, eventSpec.errInvalidMessage()
	}
	details, ok := data[3].Dict()
	if !ok {
		return nil, eventSpec.errInvalidMessage()
	}

	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 4, eventSpec)
	if err != nil {
		return nil, err
	}

	return &Event{
		SubscriptionID: subscriptionID, PublicationID: publicationID, Details: details,
		Args: args, HasArgs: hasArgs, Kwargs: kwargs, HasKwargs: hasKwargs,
	}, nil
}
