package nfa

import (
	"sort"
)

// StateID uniquely identifies a state in the automaton's state array.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// Sentinel state IDs. Both exist in every automaton and never move.
const (
	// DeadState is an absorbing stop state. Once entered it is never left.
	// It is only reachable by anchored searches and by leftmost searches
	// that have already seen a match.
	DeadState StateID = 0

	// FailState marks "no transition defined" during construction. It is
	// never a reachable runtime state: the failure-link fill eliminates
	// every FailState reference before the automaton is returned.
	FailState StateID = 1
)

// PatternID is a dense index into the caller-supplied pattern list,
// assigned in insertion order. Among simultaneous matches, the lower
// PatternID is reported first.
type PatternID uint32

// Transition is a single byte-labeled edge to another state.
type Transition struct {
	Byte byte
	Next StateID
}

// State is one automaton node.
//
// Ordinary states keep a sparse transition list, sorted and unique by byte.
// States are trie nodes, not general graphs, so the list stays small. The
// unanchored start state is the single hottest state of any unanchored scan
// and instead owns a dense 256-entry table for O(1) lookup.
type State struct {
	// trans holds the sparse transitions, sorted and unique by byte.
	trans []Transition

	// dense is the 256-entry transition table. Non-nil only for the
	// unanchored start state.
	dense []StateID

	// matches lists the patterns matched upon entering this state, in
	// discovery order. Discovery order is what breaks ties between
	// patterns matching at the same position.
	matches []PatternID

	// fail is the failure link: the longest suffix of the input consumed
	// so far that is still a viable prefix of some pattern.
	fail StateID

	// depth is the number of transitions from the unanchored start state
	// to this state. Set once during trie construction and used only at
	// construction time.
	depth uint32
}

// Next returns the transition for b, or FailState if none is defined.
func (s *State) Next(b byte) StateID {
	if s.dense != nil {
		return s.dense[b]
	}
	i := sort.Search(len(s.trans), func(i int) bool { return s.trans[i].Byte >= b })
	if i < len(s.trans) && s.trans[i].Byte == b {
		return s.trans[i].Next
	}
	return FailState
}

// setNext inserts or overwrites the transition for b, keeping the sparse
// list sorted and unique by byte. Setting a transition to FailState is a
// programming error: absence already encodes it.
func (s *State) setNext(b byte, next StateID) {
	if next == FailState {
		panic("ahocorasick/nfa: transition target must not be FailState")
	}
	if s.dense != nil {
		s.dense[b] = next
		return
	}
	i := sort.Search(len(s.trans), func(i int) bool { return s.trans[i].Byte >= b })
	if i < len(s.trans) && s.trans[i].Byte == b {
		s.trans[i].Next = next
		return
	}
	s.trans = append(s.trans, Transition{})
	copy(s.trans[i+1:], s.trans[i:])
	s.trans[i] = Transition{Byte: b, Next: next}
}

// IsMatch returns true if entering this state completes at least one pattern.
func (s *State) IsMatch() bool {
	return len(s.matches) > 0
}

// Fail returns this state's failure link.
func (s *State) Fail() StateID {
	return s.fail
}

// Depth returns the construction-time distance from the unanchored start.
func (s *State) Depth() uint32 {
	return s.depth
}

// Transitions returns the defined transitions of this state in byte order.
// For the dense start state the list is materialized on the fly, so this is
// a diagnostic accessor, not a hot-path one.
func (s *State) Transitions() []Transition {
	if s.dense == nil {
		return s.trans
	}
	var trans []Transition
	for b := 0; b < 256; b++ {
		if s.dense[b] != FailState {
			trans = append(trans, Transition{Byte: byte(b), Next: s.dense[b]})
		}
	}
	return trans
}

// Per-element sizes of the state's growable storage, in bytes.
const (
	transitionBytes = 8 // Transition: byte + padding + uint32
	stateIDBytes    = 4
	patternIDBytes  = 4
)

// heapBytes returns the heap memory used by this state's growable lists.
// Used for aggregate memory accounting on the finished automaton.
func (s *State) heapBytes() int {
	return cap(s.trans)*transitionBytes +
		cap(s.dense)*stateIDBytes +
		cap(s.matches)*patternIDBytes
}
