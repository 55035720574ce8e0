package wampproto

var unsubscribeSpec = validationSpec{minLength: 3, maxLength: 3, name: "UNSUBSCRIBE"}

// Unsubscribe asks the router to remove an existing subscription.
type Unsubscribe struct {
	RequestID      int64
	SubscriptionID int64
}

func (u *Unsubscribe) Type() int { return MessageTypeUnsubscribe }

func (u *Unsubscribe) Marshal() []Value {
	return []Value{IntValue(MessageTypeUnsubscribe), IntValue(u.RequestID), IntValue(u.SubscriptionID)}
}

func parseUnsubscribe(data []Value) (Message, error) {
	if err := unsubscribeSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, unsubscribeSpec.errInvalidMessage()
	}
	subscriptionID, ok := data[2].Int()
	if !ok {
		return nil, unsubscribeSpec.errInvalidMessage()
	}

	return &Unsubscribe{RequestID: requestID, SubscriptionID: subscriptionID}, nil
}
