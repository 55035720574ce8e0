package wampproto

var unregisteredSpec = validationSpec{minLength: 2, maxLength: 2, name: "UNREGISTERED"}

// Unregistered acknowledges an Unregister.
type Unregistered struct {
	RequestID int64
}

func (u *Unregistered) Type() int { return MessageTypeUnregistered }

func (u *Unregistered) Marshal() []Value {
	return []Value{IntValue(MessageTypeUnregistered), IntValue(u.RequestID)}
}

func parseUnregistered(data []Value) (Message, error) {
	if err := unregisteredSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, unregisteredSpec.errInvalidMessage()
	}

	return &Unregistered{RequestID: requestID}, nil
}
