package nfa

// ByteClasses maps each byte value to its equivalence class.
//
// Two bytes belong to the same class when no state of the automaton
// distinguishes between them. A denser downstream representation can then
// key its transition tables by class instead of by byte, shrinking them
// from 256 entries to however many classes the pattern set induces. This
// automaton's own transition logic never consults the classes.
type ByteClasses struct {
	classes [256]byte
}

// Get returns the equivalence class for the given byte. O(1).
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of equivalence classes.
func (bc *ByteClasses) AlphabetLen() int {
	maxClass := byte(0)
	for _, c := range bc.classes {
		if c > maxClass {
			maxClass = c
		}
	}
	return int(maxClass) + 1
}

// IsSingleton returns true if every byte is its own class, i.e. the
// pattern set admits no alphabet reduction.
func (bc *ByteClasses) IsSingleton() bool {
	return bc.AlphabetLen() == 256
}

// Representatives returns one byte per class, in ascending byte order.
func (bc *ByteClasses) Representatives() []byte {
	var seen [256]bool
	var reps []byte
	for b := 0; b < 256; b++ {
		class := bc.classes[b]
		if !seen[class] {
			seen[class] = true
			reps = append(reps, byte(b))
		}
	}
	return reps
}

// Elements returns all bytes belonging to the given class.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// ByteClassSet accumulates class boundaries while the trie is built.
//
// Every byte that labels a transition somewhere in the trie marks a
// boundary: bytes on either side of it cannot share its class. Converting
// the boundary set into classes is a single walk over all 256 bytes,
// incrementing the class number at each boundary.
type ByteClassSet struct {
	// bits is a 256-bit set; bit i is set if byte i ends a class.
	bits [4]uint64
}

// NewByteClassSet returns an empty boundary set (a single class).
func NewByteClassSet() *ByteClassSet {
	return &ByteClassSet{}
}

// SetRange marks the byte range [start, end] as having its own transitions.
func (bcs *ByteClassSet) SetRange(start, end byte) {
	if start > 0 {
		bcs.setBit(start - 1)
	}
	bcs.setBit(end)
}

// SetByte marks a single byte as having its own transition.
func (bcs *ByteClassSet) SetByte(b byte) {
	bcs.SetRange(b, b)
}

func (bcs *ByteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *ByteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// ByteClasses converts the boundary set into a dense lookup table.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)
	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		if b < 255 && bcs.getBit(byte(b)) {
			class++
		}
	}
	return bc
}
