package wampproto

import "sync"

// maxSessionScopeID is the WAMP session-scope ID ceiling (2^53), chosen so
// IDs round-trip exactly through a JSON/double-precision float.
const maxSessionScopeID = int64(1) << 53

// SessionScopeIDGenerator hands out IDs that are unique for the lifetime of
// one session: CALL/REGISTER/PUBLISH/SUBSCRIBE request IDs, and the
// registration/subscription IDs a router echoes back. It is not a
// cryptographic allocator like a router's global ID space — just a
// monotonic counter that wraps at the ceiling, guarded by a mutex since a
// Session may be driven from more than one goroutine.
type SessionScopeIDGenerator struct {
	mu sync.Mutex
	id int64
}

func NewSessionScopeIDGenerator() *SessionScopeIDGenerator {
	return &SessionScopeIDGenerator{}
}

// NextID returns the next ID in 1..=2^53, wrapping back to 1 after the
// ceiling instead of overflowing.
func (g *SessionScopeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.id == maxSessionScopeID {
		g.id = 0
	}
	g.id++
	return g.id
}
