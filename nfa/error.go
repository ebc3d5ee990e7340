package nfa

import (
	"errors"
	"fmt"
)

// Construction failure sentinels. All are detected during the trie-build
// phase and returned immediately; construction otherwise cannot fail.
var (
	// ErrPatternCountOverflow indicates too many patterns to fit the
	// 32-bit pattern id width.
	ErrPatternCountOverflow = errors.New("too many patterns for 32-bit pattern ids")

	// ErrPatternTooLong indicates a single pattern whose length exceeds
	// the maximum representable state depth.
	ErrPatternTooLong = errors.New("pattern exceeds maximum representable depth")

	// ErrStateCountOverflow indicates too many distinct trie nodes to fit
	// the 32-bit state id width.
	ErrStateCountOverflow = errors.New("too many states for 32-bit state ids")
)

// BuildError reports a construction failure together with the index of the
// pattern being inserted when it was detected. Pattern is -1 when the
// failure is not attributable to a single pattern.
type BuildError struct {
	Pattern int
	Err     error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Pattern >= 0 {
		return fmt.Sprintf("building automaton failed at pattern %d: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("building automaton failed: %v", e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
