package wampproto

var subscribedSpec = validationSpec{minLength: 3, maxLength: 3, name: "SUBSCRIBED"}

// Subscribed acknowledges a Subscribe with the resulting subscription ID.
type Subscribed struct {
	RequestID      int64
	SubscriptionID int64
}

func (s *Subscribed) Type() int { return MessageTypeSubscribed }

func (s *Subscribed) Marshal() []Value {
	return []Value{IntValue(MessageTypeSubscribed), IntValue(s.RequestID), IntValue(s.SubscriptionID)}
}

func parseSubscribed(data []Value) (Message, error) {
	if err := subscribedSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, subscribedSpec.errInvalidMessage()
	}
	subscriptionID, ok := data[2].Int()
	if !ok {
		return nil, subscribedSpec.errInvalidMessage()
	}

	return &Subscribed{RequestID: requestID, SubscriptionID: subscriptionID}, nil
}
