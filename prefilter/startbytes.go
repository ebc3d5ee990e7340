package prefilter

import (
	"github.com/coregx/ahocorasick/internal/memchr"
)

// startBytesBuilder collects the set of bytes that any pattern can
// start with. The strategy only applies when that set stays small
// enough for a vectorizable multi-byte scan.
type startBytesBuilder struct {
	dead bool
	seen [256]bool
	n    int
	rank int
}

func (b *startBytesBuilder) add(pattern []byte, config Config) {
	if b.dead || len(pattern) == 0 {
		return
	}
	b.addByte(pattern[0])
	if config.ASCIICaseInsensitive {
		b.addByte(oppositeASCIICase(pattern[0]))
	}
}

func (b *startBytesBuilder) addByte(by byte) {
	if b.dead || b.seen[by] {
		return
	}
	b.seen[by] = true
	b.n++
	b.rank += int(memchr.ByteFrequencies[by])
	if b.n > 3 {
		b.dead = true
	}
}

func (b *startBytesBuilder) build() *startBytes {
	if b.dead || b.n == 0 {
		return nil
	}
	p := &startBytes{n: b.n, rank: b.rank}
	i := 0
	for by := 0; by < 256; by++ {
		if b.seen[by] {
			p.bytes[i] = byte(by)
			i++
		}
	}
	return p
}

// startBytes reports positions of any of up to three distinct bytes
// that every pattern starts with. Every candidate it returns is a
// position where some pattern could begin, so no correction is needed.
type startBytes struct {
	bytes [3]byte
	n     int
	rank  int
}

func (p *startBytes) Find(haystack []byte, at int) int {
	if at >= len(haystack) {
		return -1
	}
	var i int
	switch p.n {
	case 1:
		i = memchr.Memchr(haystack[at:], p.bytes[0])
	case 2:
		i = memchr.Memchr2(haystack[at:], p.bytes[0], p.bytes[1])
	default:
		i = memchr.Memchr3(haystack[at:], p.bytes[0], p.bytes[1], p.bytes[2])
	}
	if i < 0 {
		return -1
	}
	return at + i
}

func (p *startBytes) HeapBytes() int { return 0 }

// oppositeASCIICase flips the case of an ASCII letter and returns any
// other byte unchanged.
func oppositeASCIICase(b byte) byte {
	switch {
	case 'a' <= b && b <= 'z':
		return b - ('a' - 'A')
	case 'A' <= b && b <= 'Z':
		return b + ('a' - 'A')
	default:
		return b
	}
}
