// Package pool provides pooled per-parse scratch buffers for optreg.
// A parse session is ephemeral; pooling its scratch keeps repeated Parse
// calls off the allocator.
package pool

import "sync"

// Session holds the reusable scratch space one parse borrows: Pieces
// collects comma-separated value fragments, Names collects the resolved
// aliases of a grouped short-flag token.
type Session struct {
	Pieces []string
	Names  []string
}

// reset clears the slices while keeping their backing arrays.
func (s *Session) reset() {
	s.Pieces = s.Pieces[:0]
	s.Names = s.Names[:0]
}

var sessions = sync.Pool{
	New: func() any {
		return &Session{
			Pieces: make([]string, 0, 8),
			Names:  make([]string, 0, 8),
		}
	},
}

// GetSession borrows a clean session from the pool.
func GetSession() *Session {
	s := sessions.Get().(*Session)
	s.reset()
	return s
}

// PutSession returns a session to the pool.
func PutSession(s *Session) {
	if s == nil {
		return
	}
	sessions.Put(s)
}
