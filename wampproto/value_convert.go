package wampproto

import "fmt"

// toNative turns a Value into the plain Go value a generic CBOR/MessagePack
// encoder understands, so that Marshal's []Value tuple can be handed to a
// non-static codec as-is.
func toNative(v Value) any {
	switch v.kind {
	case KindNull:
		return nil
	case KindInt:
		n, _ := v.Int()
		return n
	case KindFloat:
		f, _ := v.Float()
		return f
	case KindBool:
		b, _ := v.Bool()
		return b
	case KindString:
		s, _ := v.Str()
		return s
	case KindBytes:
		b, _ := v.Bytes()
		return b
	case KindList:
		l, _ := v.List()
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = toNative(e)
		}
		return out
	case KindDict:
		d, _ := v.Dict()
		out := make(map[string]any, len(d))
		for k, e := range d {
			out[k] = toNative(e)
		}
		return out
	default:
		return nil
	}
}

// fromNative is the inverse of toNative, applied to whatever a codec's
// generic decode produced. Both fxamacker/cbor and vmihailenco/msgpack are
// non-static (lossy-typed): integers may come back as int64/uint64, and
// map keys may come back as either string or any, so both are handled.
func fromNative(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NullValue(), nil
	case int64:
		return IntValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case uint64:
		return IntValue(int64(t)), nil
	case float64:
		return FloatValue(t), nil
	case float32:
		return FloatValue(float64(t)), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case []byte:
		return BytesValue(t), nil
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			v, err := fromNative(e)
			if err != nil {
				return Value{}, err
			}
			out[i] = v
		}
		return ListValue(out), nil
	case map[string]any:
		out := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := fromNative(e)
			if err != nil {
				return Value{}, err
			}
			out[k] = v
		}
		return DictValue(out), nil
	case map[any]any:
		out := make(map[string]Value, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("non-string map key %v in decoded message", k)
			}
			v, err := fromNative(e)
			if err != nil {
				return Value{}, err
			}
			out[ks] = v
		}
		return DictValue(out), nil
	default:
		return Value{}, fmt.Errorf("unsupported decoded type %T", x)
	}
}
