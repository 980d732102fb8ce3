// Package intern provides canonical string interning for optreg.
// The registry interns alias keys and the matcher interns the
// single-character names produced while expanding grouped flags, so
// repeated lookups share one canonical string.
package intern

import "sync"

// Interner is a thread-safe canonical string table.
type Interner struct {
	strings map[string]string
	mu      sync.RWMutex
}

// New creates an interner with an optional pre-allocated capacity.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	if canon, ok := in.strings[s]; ok {
		in.mu.RUnlock()
		return canon
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if canon, ok := in.strings[s]; ok {
		return canon
	}
	in.strings[s] = s
	return s
}

// InternRune returns the canonical one-character string for r. ASCII
// letters and digits hit a pre-allocated table; anything else interns
// normally.
func (in *Interner) InternRune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return asciiOne[r-'a']
	case r >= 'A' && r <= 'Z':
		return asciiOne[26+r-'A']
	case r >= '0' && r <= '9':
		return asciiOne[52+r-'0']
	}
	return in.Intern(string(r))
}

// Len reports how many strings are interned.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

// Pre-allocated one-character strings: a-z (0-25), A-Z (26-51), 0-9 (52-61).
var asciiOne = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// shared is the process-wide interner backing the package-level helpers.
var shared = New(128)

// Intern interns s in the shared table.
func Intern(s string) string {
	return shared.Intern(s)
}

// InternRune interns the one-character string for r in the shared table.
func InternRune(r rune) string {
	return shared.InternRune(r)
}
