package wampproto

var subscribeSpec = validationSpec{minLength: 4, maxLength: 4, name: "SUBSCRIBE"}

// Subscribe asks the router to subscribe the session to a topic.
type Subscribe struct {
	RequestID int64
	Options   map[string]Value
	Topic     string
}

func (s *Subscribe) Type() int { return MessageTypeSubscribe }

func (s *Subscribe) Marshal() []Value {
	return []Value{IntValue(MessageTypeSubscribe), IntValue(s.RequestID), DictValue(s.Options), StringValue(s.Topic)}
}

func parseSubscribe(data []Value) (Message, error) {
	if err := subscribeSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, subscribeSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, subscribeSpec.errInvalidMessage()
	}
	topic, ok := data[3].Str()
	if !ok {
		return nil, subscribeSpec.errInvalidMessage()
	}

	return &Subscribe{RequestID: requestID, Options: options, Topic: topic}, nil
}
