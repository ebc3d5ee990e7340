// Package memchr provides byte-search primitives for the prefilter layer.
//
// Memchr delegates to bytes.IndexByte, which the runtime already
// vector-accelerates. The multi-needle variants have no stdlib equivalent
// and use SWAR (SIMD within a register): eight haystack bytes are loaded as
// one uint64 and every needle is tested against all eight lanes at once
// with a zero-byte detection mask.
package memchr

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroMask returns a mask with the high bit set in every byte lane of v
// that is zero. Borrow propagation can set spurious high bits, but only in
// lanes above a genuine zero, so the lowest set bit is always exact.
func zeroMask(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// broadcast replicates b into all eight byte lanes.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle in
// haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	m1, m2 := broadcast(needle1), broadcast(needle2)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroMask(chunk^m1) | zeroMask(chunk^m2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle1 || haystack[i] == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of any of the three
// needles in haystack, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	m1, m2, m3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroMask(chunk^m1) | zeroMask(chunk^m2) | zeroMask(chunk^m3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle1 || haystack[i] == needle2 || haystack[i] == needle3 {
			return i
		}
	}
	return -1
}

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. It scans for the rarest byte of the needle
// and verifies candidates, which beats position-by-position comparison on
// needles whose first byte is common.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	case len(needle) > len(haystack):
		return -1
	}

	rare, rareIdx := RarestByte(needle)
	for at := 0; at+len(needle) <= len(haystack); {
		i := bytes.IndexByte(haystack[at+rareIdx:], rare)
		if i < 0 {
			return -1
		}
		start := at + i
		if start+len(needle) > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		at = start + 1
	}
	return -1
}

// RarestByte returns the byte of needle with the lowest frequency rank and
// its position. The needle must be non-empty.
func RarestByte(needle []byte) (b byte, index int) {
	b, index = needle[0], 0
	minRank := ByteFrequencies[b]
	for i := 1; i < len(needle); i++ {
		if rank := ByteFrequencies[needle[i]]; rank < minRank {
			b, index = needle[i], i
			minRank = rank
		}
	}
	return b, index
}
