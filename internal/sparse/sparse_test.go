package sparse

import "testing"

// TestSet covers insertion, membership and reset.
func TestSet(t *testing.T) {
	s := NewSet(16)

	if s.Len() != 0 {
		t.Fatalf("new set Len() = %d, want 0", s.Len())
	}
	if s.Contains(3) {
		t.Error("empty set contains 3")
	}

	s.Insert(3)
	s.Insert(15)
	s.Insert(0)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for _, v := range []uint32{0, 3, 15} {
		if !s.Contains(v) {
			t.Errorf("Contains(%d) = false after Insert", v)
		}
	}
	if s.Contains(7) {
		t.Error("Contains(7) = true, never inserted")
	}

	// Duplicate inserts do not grow the set.
	s.Insert(3)
	if s.Len() != 3 {
		t.Errorf("Len() after duplicate insert = %d, want 3", s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
	if s.Contains(3) || s.Contains(15) {
		t.Error("reset set still reports old members")
	}

	// The set is reusable after a reset.
	s.Insert(7)
	if !s.Contains(7) || s.Len() != 1 {
		t.Error("set unusable after Reset")
	}
}
