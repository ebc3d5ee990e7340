package ahocorasick

import (
	"errors"
	"testing"
)

// TestFindIter_NonOverlapping verifies that iteration resumes at the
// end of each reported match.
func TestFindIter_NonOverlapping(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		kind     MatchKind
		haystack string
		want     []Match
	}{
		{
			"disjoint matches",
			[]string{"abc", "def"},
			MatchKindStandard,
			"xabcydefz",
			[]Match{{0, 1, 4}, {1, 5, 8}},
		},
		{
			"adjacent matches",
			[]string{"ab"},
			MatchKindStandard,
			"ababab",
			[]Match{{0, 0, 2}, {0, 2, 4}, {0, 4, 6}},
		},
		{
			"overlap consumed",
			[]string{"aba"},
			MatchKindStandard,
			"ababa",
			[]Match{{0, 0, 3}},
		},
		{
			"leftmost first repeated",
			[]string{"he", "she", "his", "hers"},
			MatchKindLeftmostFirst,
			"ushers and hiss",
			[]Match{{1, 1, 4}, {2, 11, 14}},
		},
		{
			"leftmost first prefix wins once",
			[]string{"a", "ab"},
			MatchKindLeftmostFirst,
			"ab",
			[]Match{{0, 0, 1}},
		},
		{
			"leftmost longest extension wins once",
			[]string{"a", "ab"},
			MatchKindLeftmostLongest,
			"ab",
			[]Match{{1, 0, 2}},
		},
		{
			"no matches",
			[]string{"zz"},
			MatchKindStandard,
			"abcdef",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auto := mustBuild(t, tt.patterns, WithMatchKind(tt.kind))
			got := auto.FindAll([]byte(tt.haystack))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches %v, want %d", len(got), got, len(tt.want))
			}
			for i, m := range got {
				if *m != tt.want[i] {
					t.Errorf("match %d: got %v, want %v", i, m, &tt.want[i])
				}
			}
		})
	}
}

// TestFindIter_EmptyPattern verifies that zero-width matches are
// reported at every position, including the end of the haystack.
func TestFindIter_EmptyPattern(t *testing.T) {
	for _, kind := range []MatchKind{MatchKindStandard, MatchKindLeftmostFirst, MatchKindLeftmostLongest} {
		t.Run(kind.String(), func(t *testing.T) {
			auto := mustBuild(t, []string{""}, WithMatchKind(kind))
			got := auto.FindAll([]byte("ab"))
			if len(got) != 3 {
				t.Fatalf("got %d matches %v, want 3", len(got), got)
			}
			for i, m := range got {
				if m.Start != i || m.End != i {
					t.Errorf("match %d: got %v, want [%d, %d)", i, m, i, i)
				}
			}
		})
	}
}

// TestFindIter_Exhausted verifies Next keeps returning nil after the
// iterator finishes.
func TestFindIter_Exhausted(t *testing.T) {
	auto := mustBuild(t, []string{"ab"})
	it := auto.Iter([]byte("ab"))
	if m := it.Next(); m == nil {
		t.Fatal("first Next() = nil, want match")
	}
	for i := 0; i < 3; i++ {
		if m := it.Next(); m != nil {
			t.Errorf("Next() after exhaustion = %v, want nil", m)
		}
	}
}

// TestOverlappingIter verifies that every match at every position is
// reported, ordered by end position then pattern order.
func TestOverlappingIter(t *testing.T) {
	auto := mustBuild(t, []string{"he", "she", "his", "hers"})
	got, err := auto.FindAllOverlapping([]byte("ushers"))
	if err != nil {
		t.Fatalf("FindAllOverlapping() failed: %v", err)
	}

	want := []Match{
		{1, 1, 4}, // she
		{0, 2, 4}, // he
		{3, 2, 6}, // hers
	}
	if len(got) != len(want) {
		t.Fatalf("got %d matches %v, want %d", len(got), got, len(want))
	}
	for i, m := range got {
		if *m != want[i] {
			t.Errorf("match %d: got %v, want %v", i, m, &want[i])
		}
	}
}

// TestOverlappingIter_NestedPatterns covers patterns contained in
// other patterns.
func TestOverlappingIter_NestedPatterns(t *testing.T) {
	auto := mustBuild(t, []string{"a", "aa", "aaa"})
	got, err := auto.FindAllOverlapping([]byte("aaa"))
	if err != nil {
		t.Fatalf("FindAllOverlapping() failed: %v", err)
	}

	want := []Match{
		{0, 0, 1},
		{1, 0, 2}, {0, 1, 2},
		{2, 0, 3}, {1, 1, 3}, {0, 2, 3},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d matches %v, want %d", len(got), got, len(want))
	}
	for i, m := range got {
		if *m != want[i] {
			t.Errorf("match %d: got %v, want %v", i, m, &want[i])
		}
	}
}

// TestIterOverlapping_RequiresStandard verifies the match kind guard.
func TestIterOverlapping_RequiresStandard(t *testing.T) {
	for _, kind := range []MatchKind{MatchKindLeftmostFirst, MatchKindLeftmostLongest} {
		auto := mustBuild(t, []string{"ab"}, WithMatchKind(kind))
		if _, err := auto.IterOverlapping([]byte("ab")); !errors.Is(err, ErrOverlappingUnsupported) {
			t.Errorf("%v: got err %v, want ErrOverlappingUnsupported", kind, err)
		}
		if _, err := auto.FindAllOverlapping([]byte("ab")); !errors.Is(err, ErrOverlappingUnsupported) {
			t.Errorf("%v: FindAllOverlapping got err %v, want ErrOverlappingUnsupported", kind, err)
		}
	}
}
