package wampproto

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBORSerializer serializes WAMP messages with CBOR, the self-describing
// binary codec option offered alongside MessagePack.
type CBORSerializer struct{}

func NewCBORSerializer() *CBORSerializer { return &CBORSerializer{} }

func (CBORSerializer) IsStatic() bool { return false }

func (CBORSerializer) Serialize(msg Message) ([]byte, error) {
	tuple := msg.Marshal()
	native := make([]any, len(tuple))
	for i, v := range tuple {
		native[i] = toNative(v)
	}

	data, err := cbor.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("cbor: serialize message: %w", err)
	}
	return data, nil
}

func (CBORSerializer) Deserialize(data []byte) (Message, error) {
	var native []any
	if err := cbor.Unmarshal(data, &native); err != nil {
		return nil, fmt.Errorf("cbor: deserialize message: %w", err)
	}

	tuple := make([]Value, len(native))
	for i, x := range native {
		v, err := fromNative(x)
		if err != nil {
			return nil, fmt.Errorf("cbor: decode element %d: %w", i, err)
		}
		tuple[i] = v
	}

	return ToMessage(tuple)
}
