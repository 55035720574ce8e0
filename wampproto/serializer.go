package wampproto

// Serializer turns a Message into wire bytes and back. Every implementation
// here is non-static: it round-trips through a generic tuple representation
// rather than a schema fixed at compile time, mirroring the two codecs the
// protocol actually negotiates over rawsocket (see rawsocket.go).
type Serializer interface {
	Serialize(msg Message) ([]byte, error)
	Deserialize(data []byte) (Message, error)

	// IsStatic reports whether this serializer requires a fixed,
	// precompiled schema rather than round-tripping through a generic
	// tuple. Both serializers here are non-static.
	IsStatic() bool
}
