package wampproto

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackSerializer serializes WAMP messages with MessagePack, the compact
// binary codec option offered alongside CBOR.
type MsgpackSerializer struct{}

func NewMsgpackSerializer() *MsgpackSerializer { return &MsgpackSerializer{} }

func (MsgpackSerializer) IsStatic() bool { return false }

func (MsgpackSerializer) Serialize(msg Message) ([]byte, error) {
	tuple := msg.Marshal()
	native := make([]any, len(tuple))
	for i, v := range tuple {
		native[i] = toNative(v)
	}

	data, err := msgpack.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("msgpack: serialize message: %w", err)
	}
	return data, nil
}

func (MsgpackSerializer) Deserialize(data []byte) (Message, error) {
	var native []any
	if err := msgpack.Unmarshal(data, &native); err != nil {
		return nil, fmt.Errorf("msgpack: deserialize message: %w", err)
	}

	tuple := make([]Value, len(native))
	for i, x := range native {
		v, err := fromNative(x)
		if err != nil {
			return nil, fmt.Errorf("msgpack: decode element %d: %w", i, err)
		}
		tuple[i] = v
	}

	return ToMessage(tuple)
}
