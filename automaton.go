package ahocorasick

import (
	"github.com/coregx/ahocorasick/nfa"
	"github.com/coregx/ahocorasick/prefilter"
)

// Automaton is a compiled Aho-Corasick searcher. It is immutable and
// safe for concurrent use by multiple goroutines; every search keeps
// its position in local variables only.
type Automaton struct {
	nfa       *nfa.NFA
	prefilter prefilter.Prefilter
}

// MatchKind returns the match semantics the automaton was built with.
func (a *Automaton) MatchKind() MatchKind {
	return a.nfa.MatchKind()
}

// PatternCount returns the number of patterns the automaton was built
// from, including duplicates.
func (a *Automaton) PatternCount() int {
	return a.nfa.PatternCount()
}

// PatternLen returns the byte length of the pattern with the given id.
func (a *Automaton) PatternLen(pid PatternID) int {
	return a.nfa.PatternLen(pid)
}

// MinPatternLen returns the length of the shortest pattern. It is 0
// when an empty pattern was added or when there are no patterns.
func (a *Automaton) MinPatternLen() int {
	return a.nfa.MinPatternLen()
}

// MaxPatternLen returns the length of the longest pattern.
func (a *Automaton) MaxPatternLen() int {
	return a.nfa.MaxPatternLen()
}

// StateCount returns the number of automaton states, sentinels
// included.
func (a *Automaton) StateCount() int {
	return a.nfa.StateCount()
}

// MemoryUsage returns the approximate heap size of the automaton in
// bytes.
func (a *Automaton) MemoryUsage() int {
	return a.nfa.MemoryUsage()
}
