package nfa

import "fmt"

// MatchKind selects which of several possible matches a search reports.
type MatchKind uint8

const (
	// MatchKindStandard reports all matches, including overlapping and
	// suffix matches, at every position. This is classic Aho-Corasick
	// semantics.
	MatchKindStandard MatchKind = iota

	// MatchKindLeftmostFirst reports the match starting at the leftmost
	// position; among matches at that position, the earliest-inserted
	// pattern wins even if a longer one also matches there.
	MatchKindLeftmostFirst

	// MatchKindLeftmostLongest reports the match starting at the leftmost
	// position; among matches at that position, the longest pattern wins.
	MatchKindLeftmostLongest
)

// IsStandard returns true for MatchKindStandard.
func (k MatchKind) IsStandard() bool {
	return k == MatchKindStandard
}

// IsLeftmost returns true for either leftmost kind.
func (k MatchKind) IsLeftmost() bool {
	return k == MatchKindLeftmostFirst || k == MatchKindLeftmostLongest
}

// IsLeftmostFirst returns true for MatchKindLeftmostFirst.
func (k MatchKind) IsLeftmostFirst() bool {
	return k == MatchKindLeftmostFirst
}

// String returns a human-readable representation of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchKindStandard:
		return "Standard"
	case MatchKindLeftmostFirst:
		return "LeftmostFirst"
	case MatchKindLeftmostLongest:
		return "LeftmostLongest"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}
