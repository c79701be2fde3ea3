package search

import (
	"encoding/binary"
	"math/bits"
)

// SAD scores pattern against the 8 candidate offsets of window. Lane j holds
// the sum of the absolute byte differences between window[j:j+4] and
// pattern, so it is zero iff those four bytes equal the pattern: identical
// bytes contribute 0 and any mismatch contributes at least 1.
//
// This is the portable counterpart of MPSADBW with a zero immediate.
//
//	SAD("xABCDxxxxxxxxxxx", "ABCD") => [58 0 55 109 ...]
func SAD(window *[WindowSize]byte, pattern [4]byte) (scores [Lanes]uint16) {
	for j := range scores {
		var s uint16
		for i, p := range pattern {
			s += absDiff(window[j+i], p)
		}
		scores[j] = s
	}
	return scores
}

// ZeroMask reduces scores the way PCMPEQW followed by PMOVMSKB does: bits 2j
// and 2j+1 are set iff scores[j] is zero. The lane of the lowest set bit is
// bits.TrailingZeros32(mask)/2.
func ZeroMask(scores [Lanes]uint16) uint32 {
	var mask uint32
	for j, s := range scores {
		if s == 0 {
			mask |= 0b11 << (2 * j)
		}
	}
	return mask
}

func absDiff(a, b byte) uint16 {
	if a > b {
		return uint16(a - b)
	}
	return uint16(b - a)
}

func findFullWindowsGeneric(text []byte, windows int, pattern uint32) int {
	return findWindowsGeneric(text, 0, windows, pattern)
}

// findWindowsGeneric scores windows first..last-1. A window closer than 16
// bytes to the end of text is zero-filled and its lanes that would need bytes
// past the end are masked off.
func findWindowsGeneric(text []byte, first, last int, pattern uint32) int {
	var pat [4]byte
	binary.LittleEndian.PutUint32(pat[:], pattern)

	var window [WindowSize]byte
	for w := first; w < last; w++ {
		off := w * WindowStep
		n := copy(window[:], text[off:])
		clear(window[n:])

		mask := ZeroMask(SAD(&window, pat))
		if valid := n - len(pat) + 1; valid <= 0 {
			mask = 0
		} else if valid < Lanes {
			mask &= 1<<(2*valid) - 1
		}

		if mask != 0 {
			return off + bits.TrailingZeros32(mask)/2
		}
	}
	return NotFound
}
