// Package search implements a fixed-width substring scanner for 4-byte
// patterns built on a packed sum-of-absolute-differences comparison, next to
// a naive reference scanner.
//
// Find4 loads 16-byte windows of the text, 8 bytes apart, and scores the
// pattern against the 8 candidate offsets of each window. A score of zero
// marks an exact match. On amd64 with SSE4.1 the windows are scored by
// MPSADBW; everywhere else by a portable rendition of the same operation.
package search

import "encoding/binary"

//go:generate go run ../../internal/asm/find4 -out find4_amd64.s -stubs find4_stub_amd64.go -pkg search

const (
	// NotFound is returned when the pattern does not occur in the text.
	NotFound = -1

	// WindowSize is the number of text bytes loaded per comparison step.
	WindowSize = 16
	// WindowStep is the distance between two consecutive window starts.
	WindowStep = 8
	// Lanes is the number of candidate offsets scored per window.
	Lanes = 8
)

// Names of the window kernels.
const (
	KernelGeneric = "generic"
	KernelSSE41   = "sse41"
)

// windowsFunc scores the first windows full 16-byte windows of text against
// the little-endian pattern and returns the offset of the first match or -1.
type windowsFunc func(text []byte, windows int, pattern uint32) int

var (
	kernel      = KernelGeneric
	findWindows windowsFunc = findFullWindowsGeneric

	implementations = []Implementation{
		{Name: KernelGeneric, Find4: Find4Generic},
	}
)

// Implementation is a named Find4 rendition.
type Implementation struct {
	Name  string
	Find4 func(text []byte, length int, pattern [4]byte) int
}

// Kernel returns the name of the window kernel used by Find4.
func Kernel() string {
	return kernel
}

// Implementations returns every Find4 rendition usable on this CPU, the
// portable one first.
func Implementations() []Implementation {
	return append([]Implementation(nil), implementations...)
}

// Find4 returns the offset of the first occurrence of pattern in text or -1.
//
// length is the logical length of text and must satisfy
// 0 <= length <= len(text). Only window starts below length rounded down to
// a multiple of 4 are scanned; every window still scores 8 candidate offsets,
// so with length == len(text) no occurrence is missed. Bytes in
// text[length:] act as padding: windows may read them and a match that
// starts inside the scanned range but extends into them is reported. Reads
// never go past len(text).
func Find4(text []byte, length int, pattern [4]byte) int {
	return find4(findWindows, text, length, pattern)
}

// Find4Generic is Find4 on the portable kernel, whatever the CPU supports.
func Find4Generic(text []byte, length int, pattern [4]byte) int {
	return find4(findFullWindowsGeneric, text, length, pattern)
}

// Index4 returns the offset of the first occurrence of pattern in text or -1.
func Index4(text []byte, pattern [4]byte) int {
	return Find4(text, len(text), pattern)
}

func find4(full windowsFunc, text []byte, length int, pattern [4]byte) int {
	_ = text[:length:len(text)]

	limit := length &^ 3
	windows := (limit + WindowStep - 1) / WindowStep

	// windows that fit entirely inside text go to the kernel
	inside := 0
	if len(text) >= WindowSize {
		inside = min(windows, (len(text)-WindowSize)/WindowStep+1)
	}

	p := binary.LittleEndian.Uint32(pattern[:])
	if inside > 0 {
		if i := full(text, inside, p); i != NotFound {
			return i
		}
	}
	return findWindowsGeneric(text, inside, windows, p)
}
