// Package nfa implements the core Aho-Corasick automaton: a trie of all
// patterns augmented with failure links, built once by the Compiler and
// immutable afterwards.
//
// The package exposes the narrow, read-only contract a scanning loop needs:
// a start state, a transition function, state-kind predicates and match
// accessors. The finished automaton is safe to share across concurrent
// readers without synchronization, since every query is a pure read.
package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick/prefilter"
)

// special records the state-id boundaries that separate the special state
// classes after the relayout pass. States are physically ordered as
//
//	DEAD, FAIL, MATCH..., START-UNANCHORED, START-ANCHORED, NONMATCH...
//
// so "is this state special/match/start" reduces to bounded integer
// comparisons with no field reads on the per-byte hot path.
type special struct {
	// maxSpecialID is the largest special state id; always the anchored
	// start, since the starts come last among special states.
	maxSpecialID StateID

	// maxMatchID is the largest match state id. Match states occupy the
	// contiguous range (FailState, maxMatchID]. When the start states are
	// themselves match states (an empty pattern was given), maxMatchID
	// equals the anchored start id.
	maxMatchID StateID

	startUnanchoredID StateID
	startAnchoredID   StateID
}

// NFA is a compiled Aho-Corasick automaton. It exclusively owns its state
// array and is read-only once returned by the Compiler.
type NFA struct {
	states        []State
	special       special
	matchKind     MatchKind
	patternLens   []int
	minPatternLen int
	maxPatternLen int
	byteClasses   ByteClasses
	prefilter     prefilter.Prefilter
	memoryUsage   int
}

// Start returns the unanchored or anchored start state id.
func (n *NFA) Start(anchored bool) StateID {
	if anchored {
		return n.special.startAnchoredID
	}
	return n.special.startUnanchoredID
}

// Step advances the automaton from sid over input byte b.
//
// While the current state has no transition for b, the failure chain is
// followed and the lookup retried. An anchored search instead dies on the
// first failed lookup: restarting mid-haystack would report a match that
// does not begin at the anchor. Termination is guaranteed because every
// failure link points strictly closer to the start state than its origin,
// and the start state itself has a transition defined for every byte.
func (n *NFA) Step(anchored bool, sid StateID, b byte) StateID {
	for {
		s := &n.states[sid]
		next := s.Next(b)
		if next != FailState {
			return next
		}
		if anchored {
			return DeadState
		}
		sid = s.fail
	}
}

// IsSpecial returns true if sid is a dead, match or start state.
func (n *NFA) IsSpecial(sid StateID) bool {
	return sid <= n.special.maxSpecialID
}

// IsDead returns true if sid is the dead state.
func (n *NFA) IsDead(sid StateID) bool {
	return sid == DeadState
}

// IsMatch returns true if entering sid completes at least one pattern.
func (n *NFA) IsMatch(sid StateID) bool {
	return sid > FailState && sid <= n.special.maxMatchID
}

// IsStart returns true if sid is one of the two start states.
func (n *NFA) IsStart(sid StateID) bool {
	return sid == n.special.startUnanchoredID || sid == n.special.startAnchoredID
}

// MatchCount returns the number of patterns matched upon entering sid.
func (n *NFA) MatchCount(sid StateID) int {
	return len(n.states[sid].matches)
}

// MatchAt returns the i-th pattern matched upon entering sid. Index 0 is
// the winning pattern for the automaton's match kind.
func (n *NFA) MatchAt(sid StateID, i int) PatternID {
	return n.states[sid].matches[i]
}

// PatternCount returns the number of patterns this automaton was built from.
func (n *NFA) PatternCount() int {
	return len(n.patternLens)
}

// PatternLen returns the byte length of the given pattern.
func (n *NFA) PatternLen(pid PatternID) int {
	return n.patternLens[pid]
}

// MinPatternLen returns the length of the shortest pattern.
func (n *NFA) MinPatternLen() int {
	return n.minPatternLen
}

// MaxPatternLen returns the length of the longest pattern.
func (n *NFA) MaxPatternLen() int {
	return n.maxPatternLen
}

// MatchKind returns the match semantics this automaton was built with.
func (n *NFA) MatchKind() MatchKind {
	return n.matchKind
}

// MemoryUsage returns the total heap footprint of the automaton in bytes.
func (n *NFA) MemoryUsage() int {
	return n.memoryUsage
}

// Prefilter returns the literal accelerator built for this automaton, or
// nil. A prefilter only skips ahead to candidate positions; it never
// affects which matches are reported.
func (n *NFA) Prefilter() prefilter.Prefilter {
	return n.prefilter
}

// ByteClasses returns the byte equivalence classes computed for this
// automaton. They are an aid for building a denser representation downstream
// and are unused by this automaton's own transition logic.
func (n *NFA) ByteClasses() *ByteClasses {
	return &n.byteClasses
}

// StateCount returns the total number of states, sentinels included.
func (n *NFA) StateCount() int {
	return len(n.states)
}

// State returns the state with the given id, or nil if out of bounds.
// Diagnostic accessor; search loops use Step and the predicates instead.
func (n *NFA) State(sid StateID) *State {
	if int(sid) >= len(n.states) {
		return nil
	}
	return &n.states[sid]
}

// copyMatches appends src's matches to dst's match list, preserving
// discovery order. The two ids must differ: the caller reads one state
// while mutating another in the same backing array.
func (n *NFA) copyMatches(src, dst StateID) {
	if src == dst {
		panic("ahocorasick/nfa: copyMatches requires two distinct states")
	}
	if len(n.states[src].matches) == 0 {
		return
	}
	n.states[dst].matches = append(n.states[dst].matches, n.states[src].matches...)
}

// String returns a human-readable dump of states, transitions and matches.
// Informational only; the format is not stable.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "NFA(states: %d, match kind: %s, start: %d/%d, max match: %d)\n",
		len(n.states), n.matchKind,
		n.special.startUnanchoredID, n.special.startAnchoredID,
		n.special.maxMatchID)
	for id := range n.states {
		s := &n.states[id]
		sb.WriteString(n.stateString(StateID(id), s))
	}
	return sb.String()
}

func (n *NFA) stateString(id StateID, s *State) string {
	var sb strings.Builder
	marker := " "
	switch {
	case n.IsDead(id):
		marker = "D"
	case id == FailState:
		marker = "F"
	case n.IsStart(id):
		marker = "S"
	case n.IsMatch(id):
		marker = "*"
	}
	fmt.Fprintf(&sb, "%s %06d: fail=%d", marker, id, s.fail)
	if len(s.matches) > 0 {
		fmt.Fprintf(&sb, " matches=%v", s.matches)
	}
	trans := s.Transitions()
	if len(trans) > 0 {
		sb.WriteString(" [")
		for i, t := range trans {
			if i > 0 {
				sb.WriteString(", ")
			}
			if t.Byte >= 0x21 && t.Byte <= 0x7e {
				fmt.Fprintf(&sb, "%c=>%d", t.Byte, t.Next)
			} else {
				fmt.Fprintf(&sb, "0x%02X=>%d", t.Byte, t.Next)
			}
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n")
	return sb.String()
}
