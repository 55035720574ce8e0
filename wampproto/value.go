package wampproto

import "fmt"

// Kind identifies which Go type a Value currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindList
	KindDict
	KindBytes
)

// Value is the tagged-union payload type carried by every WAMP message
// field that isn't a fixed protocol element (request IDs, session IDs,
// and the like are plain int64/string fields on the message structs
// themselves). A Value is always in exactly one of the states below;
// the zero Value is Null.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   string
	l   []Value
	d   map[string]Value
	bts []byte
}

func NullValue() Value              { return Value{kind: KindNull} }
func IntValue(n int64) Value        { return Value{kind: KindInt, i: n} }
func FloatValue(n float64) Value    { return Value{kind: KindFloat, f: n} }
func BoolValue(b bool) Value        { return Value{kind: KindBool, b: b} }
func StringValue(s string) Value    { return Value{kind: KindString, s: s} }
func ListValue(l []Value) Value     { return Value{kind: KindList, l: l} }
func DictValue(d map[string]Value) Value {
	if d == nil {
		d = map[string]Value{}
	}
	return Value{kind: KindDict, d: d}
}
func BytesValue(b []byte) Value { return Value{kind: KindBytes, bts: b} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the underlying int64 and whether v actually held one.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the underlying float64 and whether v actually held one.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Bool returns the underlying bool and whether v actually held one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Str returns the underlying string and whether v actually held one.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// List returns the underlying slice and whether v actually held one.
func (v Value) List() ([]Value, bool) { return v.l, v.kind == KindList }

// Dict returns the underlying map and whether v actually held one.
func (v Value) Dict() (map[string]Value, bool) { return v.d, v.kind == KindDict }

// Bytes returns the underlying byte slice and whether v actually held one.
func (v Value) Bytes() ([]byte, bool) { return v.bts, v.kind == KindBytes }

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindString:
		return v.s
	case KindList:
		return fmt.Sprintf("%v", v.l)
	case KindDict:
		return fmt.Sprintf("%v", v.d)
	case KindBytes:
		return fmt.Sprintf("%x", v.bts)
	default:
		return "unknown"
	}
}

// dictGetStr fetches details[key] and requires it to be a Value holding a
// string, matching the parse-time field extraction every session message
// performs.
func dictGetStr(d map[string]Value, key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.Str()
	return s, ok
}

func dictGetDict(d map[string]Value, key string) (map[string]Value, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	return v.Dict()
}

func dictGetList(d map[string]Value, key string) ([]Value, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	return v.List()
}
