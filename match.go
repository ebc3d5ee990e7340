package ahocorasick

import "fmt"

// Match describes one occurrence of a pattern in a haystack. The span
// is half-open: haystack[Start:End] is the matched text.
type Match struct {
	// Pattern is the id of the matched pattern.
	Pattern PatternID

	// Start is the byte offset of the first byte of the match.
	Start int

	// End is the byte offset one past the last byte of the match.
	End int
}

// Len returns the length of the matched span in bytes.
func (m *Match) Len() int { return m.End - m.Start }

// IsEmpty reports whether the match is zero-width, which only happens
// when an empty pattern was added.
func (m *Match) IsEmpty() bool { return m.Start == m.End }

// String returns a human-readable description for debugging.
func (m *Match) String() string {
	return fmt.Sprintf("Match(pattern: %d, span: [%d, %d))", m.Pattern, m.Start, m.End)
}
