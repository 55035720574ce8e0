package wampproto

var helloSpec = validationSpec{minLength: 3, maxLength: 3, name: "HELLO"}

// Hello is sent by a client to open a session on a realm.
type Hello struct {
	Realm        string
	AuthID       string
	AuthMethods  []string
	AuthExtra    map[string]Value
	Roles        map[string]Value
}

func NewHello(realm, authid string, authExtra, roles map[string]Value, authMethods []string) *Hello {
	return &Hello{Realm: realm, AuthID: authid, AuthMethods: authMethods, AuthExtra: authExtra, Roles: roles}
}

func (h *Hello) Type() int { return MessageTypeHello }

func (h *Hello) Marshal() []Value {
	methods := make([]Value, len(h.AuthMethods))
	for i, m := range h.AuthMethods {
		methods[i] = StringValue(m)
	}

	details := map[string]Value{
		"authid":      StringValue(h.AuthID),
		"authmethods": ListValue(methods),
		"authextra":   DictValue(h.AuthExtra),
		"roles":       DictValue(h.Roles),
	}

	return []Value{IntValue(MessageTypeHello), StringValue(h.Realm), DictValue(details)}
}

func parseHello(data []Value) (Message, error) {
	if err := helloSpec.validate(data); err != nil {
		return nil, err
	}

	realm, ok := data[1].Str()
	if !ok {
		return nil, helloSpec.errInvalidMessage()
	}
	details, ok := data[2].Dict()
	if !ok {
		return nil, helloSpec.errInvalidMessage()
	}

	authid, ok := dictGetStr(details, "authid")
	if !ok {
		return nil, errMissingOrInvalidField("authid")
	}
	methodsRaw, ok := dictGetList(details, "authmethods")
	if !ok {
		return nil, errMissingOrInvalidField("authmethods")
	}
	authExtra, ok := dictGetDict(details, "authextra")
	if !ok {
		return nil, errMissingOrInvalidField("authextra")
	}
	roles, ok := dictGetDict(details, "roles")
	if !ok {
		return nil, errMissingOrInvalidField("roles")
	}

	var methods []string
	for _, m := range methodsRaw {
		if s, ok := m.Str(); ok {
			methods = append(methods, s)
		}
	}

	return NewHello(realm, authid, authExtra, roles, methods), nil
}
