package ahocorasick

import (
	"testing"
)

// TestBuilder_Build_NoPatterns verifies that an automaton with zero
// patterns builds and never matches.
func TestBuilder_Build_NoPatterns(t *testing.T) {
	auto, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if auto.PatternCount() != 0 {
		t.Errorf("PatternCount() = %d, want 0", auto.PatternCount())
	}
	if auto.IsMatch([]byte("anything")) {
		t.Error("IsMatch() = true, want false")
	}
	if m := auto.Find([]byte("anything"), 0); m != nil {
		t.Errorf("Find() = %v, want nil", m)
	}
}

// TestBuilder_AddPattern_Copies verifies the builder does not alias
// caller-owned slices.
func TestBuilder_AddPattern_Copies(t *testing.T) {
	pattern := []byte("abc")
	b := NewBuilder().AddPattern(pattern)
	pattern[0] = 'z'

	auto, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if !auto.IsMatch([]byte("xabcx")) {
		t.Error("mutating the input slice changed the automaton")
	}
	if auto.IsMatch([]byte("xzbcx")) {
		t.Error("automaton matches the mutated slice")
	}
}

// TestBuilder_AddPatterns verifies bulk insertion preserves order.
func TestBuilder_AddPatterns(t *testing.T) {
	auto, err := NewBuilder().AddPatterns([][]byte{
		[]byte("foo"),
		[]byte("bar"),
	}).Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	m := auto.Find([]byte("xxbar"), 0)
	if m == nil || m.Pattern != 1 {
		t.Errorf("Find() = %v, want pattern 1", m)
	}
}

// TestAutomaton_Accessors verifies the metadata accessors.
func TestAutomaton_Accessors(t *testing.T) {
	auto := mustBuild(t, []string{"he", "she", "hers"}, WithMatchKind(MatchKindLeftmostLongest))

	if got := auto.MatchKind(); got != MatchKindLeftmostLongest {
		t.Errorf("MatchKind() = %v, want %v", got, MatchKindLeftmostLongest)
	}
	if got := auto.PatternCount(); got != 3 {
		t.Errorf("PatternCount() = %d, want 3", got)
	}
	if got := auto.PatternLen(1); got != 3 {
		t.Errorf("PatternLen(1) = %d, want 3", got)
	}
	if got := auto.MinPatternLen(); got != 2 {
		t.Errorf("MinPatternLen() = %d, want 2", got)
	}
	if got := auto.MaxPatternLen(); got != 4 {
		t.Errorf("MaxPatternLen() = %d, want 4", got)
	}
	if got := auto.StateCount(); got < 4 {
		t.Errorf("StateCount() = %d, want at least the sentinel states", got)
	}
	if got := auto.MemoryUsage(); got <= 0 {
		t.Errorf("MemoryUsage() = %d, want positive", got)
	}
}

// TestAutomaton_MemoryUsage_Grows checks that adding patterns does not
// shrink the reported footprint.
func TestAutomaton_MemoryUsage_Grows(t *testing.T) {
	small := mustBuild(t, []string{"ab"})
	large := mustBuild(t, []string{"ab", "abcdefgh", "abcdefghijklmnop"})
	if large.MemoryUsage() < small.MemoryUsage() {
		t.Errorf("MemoryUsage() shrank: %d -> %d", small.MemoryUsage(), large.MemoryUsage())
	}
}

// TestMatch_Accessors verifies the Match helpers.
func TestMatch_Accessors(t *testing.T) {
	m := &Match{Pattern: 2, Start: 3, End: 7}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got, want := m.String(), "Match(pattern: 2, span: [3, 7))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty := &Match{Pattern: 0, Start: 5, End: 5}
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}
