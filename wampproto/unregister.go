package wampproto

var unregisterSpec = validationSpec{minLength: 3, maxLength: 3, name: "UNREGISTER"}

// Unregister asks the router to remove an existing registration.
type Unregister struct {
	RequestID      int64
	RegistrationID int64
}

func (u *Unregister) Type() int { return MessageTypeUnregister }

func (u *Unregister) Marshal() []Value {
	return []Value{IntValue(MessageTypeUnregister), IntValue(u.RequestID), IntValue(u.RegistrationID)}
}

func parseUnregister(data []Value) (Message, error) {
	if err := unregisterSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, unregisterSpec.errInvalidMessage()
	}
	registrationID, ok := data[2].Int()
	if !ok {
		return nil, unregisterSpec.errInvalidMessage()
	}

	return &Unregister{RequestID: requestID, RegistrationID: registrationID}, nil
}
