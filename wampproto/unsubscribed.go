package wampproto

var unsubscribedSpec = validationSpec{minLength: 2, maxLength: 2, name: "UNSUBSCRIBED"}

// Unsubscribed acknowledges an Unsubscribe.
type Unsubscribed struct {
	RequestID int64
}

func (u *Unsubscribed) Type() int { return MessageTypeUnsubscribed }

func (u *Unsubscribed) Marshal() []Value {
	return []Value{IntValue(MessageTypeUnsubscribed), IntValue(u.RequestID)}
}

func parseUnsubscribed(data []Value) (Message, error) {
	if err := unsubscribedSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, unsubscribedSpec.errInvalidMessage()
	}

	return &Unsubscribed{RequestID: requestID}, nil
}
