package wampproto

var welcomeSpec = validationSpec{minLength: 3, maxLength: 3, name: "WELCOME"}

// Welcome is the router's reply completing a session join.
type Welcome struct {
	SessionID int64
	Realm     string
	AuthID    string
	AuthRole  string
	Details   map[string]Value
}

func (w *Welcome) Type() int { return MessageTypeWelcome }

func (w *Welcome) Marshal() []Value {
	details := make(map[string]Value, len(w.Details)+3)
	for k, v := range w.Details {
		details[k] = v
	}
	if w.Realm != "" {
		details["realm"] = StringValue(w.Realm)
	}
	details["authid"] = StringValue(w.AuthID)
	details["authrole"] = StringValue(w.AuthRole)

	return []Value{IntValue(MessageTypeWelcome), IntValue(w.SessionID), DictValue(details)}
}

func parseWelcome(data []Value) (Message, error) {
	if err := welcomeSpec.validate(data); err != nil {
		return nil, err
	}

	sessionID, ok := data[1].Int()
	if !ok {
		return nil, welcomeSpec.errInvalidMessage()
	}
	details, ok := data[2].Dict()
	if !ok {
		return nil, welcomeSpec.errInvalidMessage()
	}

	// Some routers omit realm in WELCOME; the Joiner substitutes the realm
	// it sent in HELLO when this comes back empty.
	realm, _ := dictGetStr(details, "realm")

	authid, ok := dictGetStr(details, "authid")
	if !ok {
		return nil, errMissingOrInvalidField("authid")
	}
	authrole, ok := dictGetStr(details, "authrole")
	if !ok {
		return nil, errMissingOrInvalidField("authrole")
	}

	return &Welcome{
		SessionID: sessionID,
		Realm:     realm,
		AuthID:    authid,
		AuthRole:  authrole,
		Details:   details,
	}, nil
}
