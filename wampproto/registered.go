package wampproto

var registeredSpec = validationSpec{minLength: 3, maxLength: 3, name: "REGISTERED"}

// Registered acknowledges a Register with the resulting registration ID.
type Registered struct {
	RequestID      int64
	RegistrationID int64
}

func (r *Registered) Type() int { return MessageTypeRegistered }

func (r *Registered) Marshal() []Value {
	return []Value{IntValue(MessageTypeRegistered), IntValue(r.RequestID), IntValue(r.RegistrationID)}
}

func parseRegistered(data []Value) (Message, error) {
	if err := registeredSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, registeredSpec.errInvalidMessage()
	}
	registrationID, ok := data[2].Int()
	if !ok {
		return nil, registeredSpec.errInvalidMessage()
	}

	return &Registered{RequestID: requestID, RegistrationID: registrationID}, nil
}
