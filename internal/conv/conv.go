// Package conv provides safe integer narrowing for the automaton builder.
//
// The helpers panic on overflow: callers pre-check their inputs against the
// construction limits, so an overflow here indicates a programming error,
// not bad user input.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint to avoid overflow on 32-bit platforms where int
	// cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
