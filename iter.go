package ahocorasick

import (
	"errors"

	"github.com/coregx/ahocorasick/nfa"
)

// ErrOverlappingUnsupported is returned when overlapping iteration is
// requested on an automaton built with leftmost match semantics, which
// prune the overlaps away at construction time.
var ErrOverlappingUnsupported = errors.New("ahocorasick: overlapping iteration requires standard match semantics")

// FindIter iterates over non-overlapping matches, resuming each search
// at the end of the previous match. A zero-width match advances the
// position by one byte so iteration always terminates.
type FindIter struct {
	auto     *Automaton
	haystack []byte
	pos      int
}

// Iter returns an iterator over non-overlapping matches in haystack.
func (a *Automaton) Iter(haystack []byte) *FindIter {
	return &FindIter{auto: a, haystack: haystack}
}

// Next returns the next match, or nil when iteration is finished.
func (it *FindIter) Next() *Match {
	if it.pos > len(it.haystack) {
		return nil
	}
	m := it.auto.find(it.haystack, it.pos, false)
	if m == nil {
		it.pos = len(it.haystack) + 1
		return nil
	}
	if m.IsEmpty() {
		it.pos = m.End + 1
	} else {
		it.pos = m.End
	}
	return m
}

// FindAll returns all non-overlapping matches in haystack, in the
// order Iter yields them.
func (a *Automaton) FindAll(haystack []byte) []*Match {
	var matches []*Match
	it := a.Iter(haystack)
	for m := it.Next(); m != nil; m = it.Next() {
		matches = append(matches, m)
	}
	return matches
}

// OverlappingIter iterates over every match at every position,
// including matches contained inside other matches. It walks the
// haystack once and drains each match state's pattern list before
// consuming the next byte.
type OverlappingIter struct {
	auto     *Automaton
	haystack []byte
	pos      int
	sid      nfa.StateID
	matchIdx int
}

// IterOverlapping returns an iterator over all overlapping matches in
// haystack. It fails unless the automaton uses MatchKindStandard.
func (a *Automaton) IterOverlapping(haystack []byte) (*OverlappingIter, error) {
	if !a.nfa.MatchKind().IsStandard() {
		return nil, ErrOverlappingUnsupported
	}
	return &OverlappingIter{
		auto:     a,
		haystack: haystack,
		sid:      a.nfa.Start(false),
	}, nil
}

// Next returns the next match, or nil when iteration is finished.
// Matches are ordered by end position, then by the order the patterns
// were added.
func (it *OverlappingIter) Next() *Match {
	n := it.auto.nfa
	for {
		if it.matchIdx < n.MatchCount(it.sid) {
			pid := n.MatchAt(it.sid, it.matchIdx)
			it.matchIdx++
			return &Match{
				Pattern: pid,
				Start:   it.pos - n.PatternLen(pid),
				End:     it.pos,
			}
		}
		if it.pos >= len(it.haystack) {
			return nil
		}
		it.sid = n.Step(false, it.sid, it.haystack[it.pos])
		it.pos++
		it.matchIdx = 0
	}
}

// FindAllOverlapping returns every overlapping match in haystack. It
// fails unless the automaton uses MatchKindStandard.
func (a *Automaton) FindAllOverlapping(haystack []byte) ([]*Match, error) {
	it, err := a.IterOverlapping(haystack)
	if err != nil {
		return nil, err
	}
	var matches []*Match
	for m := it.Next(); m != nil; m = it.Next() {
		matches = append(matches, m)
	}
	return matches, nil
}
