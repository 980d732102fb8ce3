package pool

import "testing"

func TestSessionStartsClean(t *testing.T) {
	s := GetSession()
	s.Pieces = append(s.Pieces, "a", "b")
	s.Names = append(s.Names, "x")
	PutSession(s)

	s2 := GetSession()
	defer PutSession(s2)
	if len(s2.Pieces) != 0 || len(s2.Names) != 0 {
		t.Errorf("Expected clean session from pool, got pieces=%v names=%v", s2.Pieces, s2.Names)
	}
}

func TestSessionKeepsCapacity(t *testing.T) {
	s := GetSession()
	for i := 0; i < 32; i++ {
		s.Pieces = append(s.Pieces, "piece")
	}
	grown := cap(s.Pieces)
	PutSession(s)

	s2 := GetSession()
	defer PutSession(s2)
	if s2 == s && cap(s2.Pieces) != grown {
		t.Errorf("Expected reused session to keep grown capacity %d, got %d", grown, cap(s2.Pieces))
	}
}

func TestPutNilIsSafe(t *testing.T) {
	PutSession(nil) // must not panic
}
