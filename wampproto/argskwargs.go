package wampproto

// Several message kinds carry an optional args/kwargs tail after their
// fixed fields: {fixed...}, {fixed..., args}, or {fixed..., args|Null,
// kwargs}. kwargs is only ever present alongside an args slot; a Null
// placeholder fills that slot when the caller wants kwargs without args.
// marshalArgsKwargs and parseArgsKwargsTail implement that shared tail on
// both sides of the wire, in place of repeating it per message kind.

func marshalArgsKwargs(head []Value, args []Value, hasArgs bool, kwargs map[string]Value, hasKwargs bool) []Value {
	result := head

	if hasArgs {
		result = append(result, ListValue(args))
	}

	if hasKwargs {
		if !hasArgs {
			result = append(result, NullValue())
		}
		result = append(result, DictValue(kwargs))
	}

	return result
}

// parseArgsKwargsTail interprets data[fixedLen:] as the optional tail. It
// returns hasArgs/hasKwargs so callers can tell "absent" from "present but
// empty".
func parseArgsKwargsTail(data []Value, fixedLen int, spec validationSpec) (args []Value, hasArgs bool, kwargs map[string]Value, hasKwargs bool, err error) {
	switch len(data) - fixedLen {
	case 0:
		return nil, false, nil, false, nil
	case 1:
		l, ok := data[fixedLen].List()
		if !ok {
			return nil, false, nil, false, spec.errInvalidMessage()
		}
		return l, true, nil, false, nil
	case 2:
		var gotArgs bool
		l, ok := data[fixedLen].List()
		if ok {
			gotArgs = true
		} else if !data[fixedLen].IsNull() {
			return nil, false, nil, false, spec.errInvalidMessage()
		}

		d, ok := data[fixedLen+1].Dict()
		if !ok {
			return nil, false, nil, false, spec.errInvalidMessage()
		}

		return l, gotArgs, d, true, nil
	default:
		return nil, false, nil, false, spec.errInvalidMessage()
	}
}
