package nfa

import "testing"

// TestMatchKind_Predicates verifies the kind classification helpers.
func TestMatchKind_Predicates(t *testing.T) {
	tests := []struct {
		kind       MatchKind
		isStandard bool
		isLeftmost bool
		isLF       bool
		str        string
	}{
		{MatchKindStandard, true, false, false, "Standard"},
		{MatchKindLeftmostFirst, false, true, true, "LeftmostFirst"},
		{MatchKindLeftmostLongest, false, true, false, "LeftmostLongest"},
	}

	for _, tt := range tests {
		if got := tt.kind.IsStandard(); got != tt.isStandard {
			t.Errorf("%s: IsStandard() = %v, want %v", tt.str, got, tt.isStandard)
		}
		if got := tt.kind.IsLeftmost(); got != tt.isLeftmost {
			t.Errorf("%s: IsLeftmost() = %v, want %v", tt.str, got, tt.isLeftmost)
		}
		if got := tt.kind.IsLeftmostFirst(); got != tt.isLF {
			t.Errorf("%s: IsLeftmostFirst() = %v, want %v", tt.str, got, tt.isLF)
		}
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}
