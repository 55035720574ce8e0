package wampproto

var publishedSpec = validationSpec{minLength: 3, maxLength: 3, name: "PUBLISHED"}

// Published acknowledges a Publish that requested acknowledgement.
type Published struct {
	RequestID     int64
	PublicationID int64
}

func (p *Published) Type() int { return MessageTypePublished }

func (p *Published) Marshal() []Value {
	return []Value{IntValue(MessageTypePublished), IntValue(p.RequestID), IntValue(p.PublicationID)}
}

func parsePublished(data []Value) (Message, error) {
	if err := publishedSpec.validate(data); err != nil {
		return nil, err
	}

	requestID, ok := data[1].Int()
	if !ok {
		return nil, publishedSpec.errInvalidMessage()
	}
	publicationID, ok := data[2].Int()
	if !ok {
		return nil, publishedSpec.errInvalidMessage()
	}

	return &Published{RequestID: requestID, PublicationID: publicationID}, nil
}
