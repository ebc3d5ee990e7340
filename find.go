package ahocorasick

import (
	"github.com/coregx/ahocorasick/nfa"
)

// Find returns the first match in haystack[at:] according to the
// automaton's match kind, or nil when there is none. For
// MatchKindStandard the match with the earliest end is reported; for
// the leftmost kinds the match with the leftmost start is reported,
// with ties broken by the kind.
func (a *Automaton) Find(haystack []byte, at int) *Match {
	return a.find(haystack, at, false)
}

// FindAnchored is like Find but only reports matches that start
// exactly at position at.
func (a *Automaton) FindAnchored(haystack []byte, at int) *Match {
	return a.find(haystack, at, true)
}

// IsMatch reports whether any pattern occurs anywhere in haystack. It
// never allocates.
func (a *Automaton) IsMatch(haystack []byte) bool {
	n := a.nfa
	sid := n.Start(false)
	if n.IsMatch(sid) {
		return true
	}
	for i := 0; i < len(haystack); i++ {
		if a.prefilter != nil && n.IsStart(sid) {
			j := a.prefilter.Find(haystack, i)
			if j < 0 {
				return false
			}
			i = j
		}
		sid = n.Step(false, sid, haystack[i])
		if n.IsMatch(sid) {
			return true
		}
		if n.IsDead(sid) {
			return false
		}
	}
	return false
}

func (a *Automaton) find(haystack []byte, at int, anchored bool) *Match {
	if at < 0 || at > len(haystack) {
		return nil
	}
	if a.nfa.MatchKind().IsLeftmost() {
		return a.findLeftmost(haystack, at, anchored)
	}
	return a.findStandard(haystack, at, anchored)
}

// findStandard reports the first entry into a match state, which is
// the match with the earliest end position.
func (a *Automaton) findStandard(haystack []byte, at int, anchored bool) *Match {
	n := a.nfa
	sid := n.Start(anchored)
	if n.IsMatch(sid) {
		return a.matchAt(sid, at)
	}
	for i := at; i < len(haystack); i++ {
		if a.prefilter != nil && !anchored && n.IsStart(sid) {
			j := a.prefilter.Find(haystack, i)
			if j < 0 {
				return nil
			}
			i = j
		}
		sid = n.Step(anchored, sid, haystack[i])
		if n.IsMatch(sid) {
			return a.matchAt(sid, i+1)
		}
		if n.IsDead(sid) {
			return nil
		}
	}
	return nil
}

// findLeftmost keeps the most recent match-state entry as a candidate
// and reports it when the automaton dies or input ends. The failure
// links of a leftmost automaton guarantee the last candidate before
// death is the leftmost match under the configured tie break.
func (a *Automaton) findLeftmost(haystack []byte, at int, anchored bool) *Match {
	n := a.nfa
	sid := n.Start(anchored)
	var last *Match
	if n.IsMatch(sid) {
		last = a.matchAt(sid, at)
	}
	for i := at; i < len(haystack); i++ {
		if a.prefilter != nil && !anchored && last == nil && n.IsStart(sid) {
			j := a.prefilter.Find(haystack, i)
			if j < 0 {
				return nil
			}
			i = j
		}
		sid = n.Step(anchored, sid, haystack[i])
		if n.IsDead(sid) {
			return last
		}
		if n.IsMatch(sid) {
			last = a.matchAt(sid, i+1)
		}
	}
	return last
}

// matchAt builds the Match for entering a match state with its end at
// the given haystack position.
func (a *Automaton) matchAt(sid nfa.StateID, end int) *Match {
	pid := a.nfa.MatchAt(sid, 0)
	return &Match{
		Pattern: pid,
		Start:   end - a.nfa.PatternLen(pid),
		End:     end,
	}
}
