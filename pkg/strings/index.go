// Package strings offers the scanners of package search on strings.
package strings

import (
	"strings"
	"unsafe"

	"github.com/jeschkies/go-find4/pkg/search"
)

// Index returns the index of the first instance of substr in s, or -1 if
// substr is not present. Four byte substrings go through the vectorized
// scanner, everything else through strings.Index.
func Index(s, substr string) int {
	if len(substr) == 4 {
		return search.Index4(bytesOf(s), [4]byte(bytesOf(substr)))
	}
	return strings.Index(s, substr)
}

// Index4 is search.Index4 on strings. It panics if pattern is not exactly 4
// bytes long.
func Index4(s, pattern string) int {
	if len(pattern) != 4 {
		panic("strings: Index4 pattern must be 4 bytes, got " + pattern)
	}
	return search.Index4(bytesOf(s), [4]byte(bytesOf(pattern)))
}

// NaiveIndex is search.NaiveIndex on strings.
func NaiveIndex(s, substr string) int {
	return search.NaiveIndex(bytesOf(s), bytesOf(substr))
}

// bytesOf returns a read-only view of s without copying.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
