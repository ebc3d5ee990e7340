package nfa

import "testing"

// TestByteClassSet_ByteClasses verifies boundary-to-class conversion.
func TestByteClassSet_ByteClasses(t *testing.T) {
	t.Run("empty set is one class", func(t *testing.T) {
		bc := NewByteClassSet().ByteClasses()
		if got := bc.AlphabetLen(); got != 1 {
			t.Errorf("AlphabetLen() = %d, want 1", got)
		}
		if bc.Get(0) != bc.Get(255) {
			t.Error("all bytes should share the single class")
		}
	})

	t.Run("single byte splits three ways", func(t *testing.T) {
		set := NewByteClassSet()
		set.SetByte('a')
		bc := set.ByteClasses()

		if got := bc.AlphabetLen(); got != 3 {
			t.Fatalf("AlphabetLen() = %d, want 3", got)
		}
		if bc.Get('a'-1) == bc.Get('a') {
			t.Error("'a' shares a class with the byte below it")
		}
		if bc.Get('a') == bc.Get('a'+1) {
			t.Error("'a' shares a class with the byte above it")
		}
		if bc.Get(0) != bc.Get('a'-1) || bc.Get('a'+1) != bc.Get(255) {
			t.Error("bytes between boundaries should share classes")
		}
	})

	t.Run("range keeps interior together", func(t *testing.T) {
		set := NewByteClassSet()
		set.SetRange('a', 'z')
		bc := set.ByteClasses()

		if bc.Get('a') != bc.Get('m') || bc.Get('m') != bc.Get('z') {
			t.Error("range interior split into several classes")
		}
		if bc.Get('a') == bc.Get('a'-1) {
			t.Error("range start shares a class with the byte below it")
		}
	})
}

// TestByteClasses_Representatives verifies representative and element
// enumeration agree with the class mapping.
func TestByteClasses_Representatives(t *testing.T) {
	set := NewByteClassSet()
	set.SetByte('a')
	set.SetByte('b')
	bc := set.ByteClasses()

	reps := bc.Representatives()
	if len(reps) != bc.AlphabetLen() {
		t.Fatalf("got %d representatives, want %d", len(reps), bc.AlphabetLen())
	}
	seen := make(map[byte]bool)
	for _, r := range reps {
		class := bc.Get(r)
		if seen[class] {
			t.Errorf("class %d has two representatives", class)
		}
		seen[class] = true
	}

	for _, e := range bc.Elements(bc.Get('a')) {
		if bc.Get(e) != bc.Get('a') {
			t.Errorf("Elements returned byte %#x outside the class", e)
		}
	}
}

// TestCompiler_Compile_ByteClasses verifies the automaton exposes the
// classes induced by its pattern bytes.
func TestCompiler_Compile_ByteClasses(t *testing.T) {
	n := compile(t, DefaultCompilerConfig(), "ab")
	bc := n.ByteClasses()

	if bc.Get('a') == bc.Get('b') {
		t.Error("distinct pattern bytes share a class")
	}
	if bc.Get(0x00) != bc.Get(0x01) {
		t.Error("bytes absent from every pattern should share a class")
	}
	if bc.IsSingleton() {
		t.Error("a two-byte pattern set should admit alphabet reduction")
	}
}
