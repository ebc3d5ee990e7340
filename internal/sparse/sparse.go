// Package sparse provides a sparse set for O(1) membership testing over a
// dense universe of small integer ids.
//
// The compiler's breadth-first failure-link fill uses it to deduplicate
// states discovered through case-folded transitions: two different bytes
// can lead to the same child state, and a child must be queued only once.
package sparse

// Set is a set of uint32 values below a fixed capacity. It keeps a sparse
// array for membership testing and a dense array for cheap reset, giving
// O(1) Insert, Contains and Reset with no per-operation allocation.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // inserted values, in insertion order
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. Inserting a value already present is a
// no-op. Values at or beyond the set's capacity panic: the universe is
// fixed at construction.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Reset empties the set in O(1) without releasing its storage.
func (s *Set) Reset() {
	s.dense = s.dense[:0]
}
