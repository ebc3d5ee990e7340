// Package ahocorasick implements multi-pattern substring search using
// the Aho-Corasick algorithm.
//
// An Automaton is compiled once from a set of byte-string patterns and
// then searched any number of times, from any number of goroutines.
// Three match semantics are supported: standard (earliest match end,
// the classic textbook behavior), leftmost-first (leftmost match start,
// ties broken by pattern order) and leftmost-longest (leftmost match
// start, ties broken by pattern length).
//
// Basic usage:
//
//	auto, err := ahocorasick.NewBuilder(
//		ahocorasick.WithMatchKind(ahocorasick.MatchKindLeftmostFirst),
//	).AddString("he").AddString("she").Build()
//	if err != nil {
//		// handle pattern or size limit errors
//	}
//	m := auto.Find([]byte("ushers"), 0)
package ahocorasick

import (
	"github.com/coregx/ahocorasick/nfa"
)

// MatchKind selects the semantics of which match an unanchored search
// reports when several patterns match at overlapping positions.
type MatchKind = nfa.MatchKind

const (
	// MatchKindStandard reports the match with the earliest end
	// position. This is the only semantics supporting overlapping
	// iteration.
	MatchKindStandard = nfa.MatchKindStandard

	// MatchKindLeftmostFirst reports the leftmost match, breaking ties
	// by the order patterns were added.
	MatchKindLeftmostFirst = nfa.MatchKindLeftmostFirst

	// MatchKindLeftmostLongest reports the leftmost match, breaking
	// ties by preferring the longest pattern.
	MatchKindLeftmostLongest = nfa.MatchKindLeftmostLongest
)

// PatternID identifies a pattern by the order it was added to the
// builder, starting at 0.
type PatternID = nfa.PatternID
