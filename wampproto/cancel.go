package wampproto

// cancelSpec mirrors INTERRUPT's shape (request_id, options). Not present
// in the retrieved original_source/ excerpt; hand-authored from spec.md's
// message table — see DESIGN.md.
var cancelSpec = validationSpec{minLength: 3, maxLength: 3, name: "CANCEL"}

// Cancel asks the router to cancel an outstanding Call.
type Cancel struct {
	RequestID int64
	Options   map[string]Value
}

func (c *Cancel) Type() int { return MessageTypeCancel }

func (c *Cancel) Marshal() []Value {
	return []Value{IntValue(MessageTypeCancel), IntValue(c.RequestID), DictValue(c.Options)}
}

func parseCancel(data []Value) (Message, error) {
	if err := cancelSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, cancelSpec.errInvalidMessage()
	}
	options, ok := data[2].Dict()
	if !ok {
		return nil, cancelSpec.errInvalidMessage()
	}

	return &Cancel{RequestID: requestID, Options: options}, nil
}
