// Package prefilter provides cheap candidate scanners used to skip
// haystack regions that cannot contain a match.
//
// A prefilter never decides whether a match exists. It only reports a
// candidate position at or after the current offset such that no match
// can start before it. The automaton itself verifies every candidate,
// so a prefilter with false positives is still correct, just slower.
package prefilter

// Prefilter scans a haystack for positions where a match could begin.
//
// Find returns the smallest candidate position p with at <= p such
// that no pattern match starts in haystack[at:p], or -1 when no match
// can start anywhere in haystack[at:]. A candidate is a hint, not a
// match; callers must run the automaton from p to verify.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Prefilter interface {
	Find(haystack []byte, at int) int
	HeapBytes() int
}

// Config controls how candidate patterns are interpreted.
type Config struct {
	// ASCIICaseInsensitive widens every byte set with the opposite
	// ASCII case, matching the automaton's folding.
	ASCIICaseInsensitive bool
}

// maxRareOffset bounds how far into a pattern the rare-byte strategy
// will look. Offsets are subtracted from found positions, so the bound
// keeps the backward correction small and the scan windows useful.
const maxRareOffset = 255

// Builder accumulates patterns and selects the best applicable
// prefilter for the whole set, if any.
type Builder struct {
	config  Config
	count   int
	enabled bool

	// Exact single-pattern candidate. Invalidated by a second Add.
	single []byte

	start startBytesBuilder
	rare  rareBytesBuilder
}

// NewBuilder returns a Builder ready to accept patterns.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config, enabled: true}
}

// Add records one pattern. Patterns must be added in the same form the
// automaton was built from. An empty pattern disables prefiltering
// entirely, since every position is then a candidate.
func (b *Builder) Add(pattern []byte) {
	b.count++
	if len(pattern) == 0 {
		b.enabled = false
	}
	if !b.enabled {
		return
	}
	if b.count == 1 {
		b.single = append([]byte(nil), pattern...)
	} else {
		b.single = nil
	}
	b.start.add(pattern, b.config)
	b.rare.add(pattern, b.config)
}

// Build selects a prefilter for the accumulated patterns. It returns
// nil when no strategy applies, in which case the caller should search
// without acceleration.
func (b *Builder) Build() Prefilter {
	if !b.enabled || b.count == 0 {
		return nil
	}
	// A single case-sensitive pattern of at least two bytes gets a
	// substring scan, which is both a candidate finder and exact.
	if b.single != nil && len(b.single) > 1 && !b.config.ASCIICaseInsensitive {
		return &memmemPrefilter{needle: b.single}
	}
	start := b.start.build()
	rare := b.rare.build()
	switch {
	case start == nil && rare == nil:
		return nil
	case start == nil:
		return rare
	case rare == nil:
		return start
	case rare.rank < start.rank:
		// Rare bytes pay a backward correction on every candidate,
		// so they must beat start bytes on frequency to be worth it.
		return rare
	default:
		return start
	}
}
