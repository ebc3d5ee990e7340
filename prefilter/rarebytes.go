package prefilter

import (
	"github.com/coregx/ahocorasick/internal/memchr"
)

// rareBytesBuilder picks one rare byte per pattern and scans for the
// union of those bytes. Because a chosen byte may sit in the middle of
// its pattern, every found position is corrected backwards by the
// largest chosen offset before being reported as a candidate.
type rareBytesBuilder struct {
	dead      bool
	seen      [256]bool
	n         int
	rank      int
	maxOffset int
}

func (b *rareBytesBuilder) add(pattern []byte, config Config) {
	if b.dead || len(pattern) == 0 {
		return
	}
	// Cap the window so the backward correction stays bounded.
	window := pattern
	if len(window) > maxRareOffset {
		window = window[:maxRareOffset]
	}
	rare, offset := memchr.RarestByte(window)
	if offset > b.maxOffset {
		b.maxOffset = offset
	}
	b.addByte(rare)
	if config.ASCIICaseInsensitive {
		b.addByte(oppositeASCIICase(rare))
	}
}

func (b *rareBytesBuilder) addByte(by byte) {
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

func (b *rareBytesBuilder) build() *rareBytes {
	if b.dead || b.n == 0 {
		return nil
	}
	p := &rareBytes{n: b.n, rank: b.rank, maxOffset: b.maxOffset}
	i := 0
	for by := 0; by < 256; by++ {
		if b.seen[by] {
			p.bytes[i] = byte(by)
			i++
		}
	}
	return p
}

// rareBytes reports candidates derived from rare interior bytes. Any
// match of any pattern must contain one of the set bytes within
// maxOffset bytes of its start, so pos-maxOffset (clamped to at) is a
// sound candidate position.
type rareBytes struct {
	bytes     [3]byte
	n         int
	rank      int
	maxOffset int
}

func (p *rareBytes) Find(haystack []byte, at int) int {
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
	candidate := at + i - p.maxOffset
	if candidate < at {
		candidate = at
	}
	return candidate
}

func (p *rareBytes) HeapBytes() int { return 0 }
