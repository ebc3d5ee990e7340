package prefilter

import (
	"github.com/coregx/ahocorasick/internal/memchr"
)

// memmemPrefilter scans for a single literal needle. With exactly one
// case-sensitive pattern the candidate positions it reports are real
// match starts, but callers still verify through the automaton so the
// search loop stays uniform.
type memmemPrefilter struct {
	needle []byte
}

func (p *memmemPrefilter) Find(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	i := memchr.Memmem(haystack[at:], p.needle)
	if i < 0 {
		return -1
	}
	return at + i
}

func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }
