//go:build amd64 && !noasm

package search

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind4SSE41MatchesGeneric(t *testing.T) {
	if !hasSSE41 {
		t.Skip("SSE4.1 not available")
	}

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		text := make([]byte, WindowSize+rnd.Intn(256))
		for j := range text {
			text[j] = "ab"[rnd.Intn(2)]
		}
		var pattern [4]byte
		for j := range pattern {
			pattern[j] = "ab"[rnd.Intn(2)]
		}
		p := binary.LittleEndian.Uint32(pattern[:])

		windows := (len(text)-WindowSize)/WindowStep + 1
		require.Equal(t, findFullWindowsGeneric(text, windows, p), find4SSE41(text, windows, p), "%q in %q", pattern, text)
	}
}

func TestFind4SSE41Lanes(t *testing.T) {
	if !hasSSE41 {
		t.Skip("SSE4.1 not available")
	}

	pattern := [4]byte{'x', 'y', 'z', 'b'}
	p := binary.LittleEndian.Uint32(pattern[:])
	for at := 0; at+4 <= 3*WindowSize; at++ {
		text := make([]byte, 3*WindowSize)
		copy(text[at:], pattern[:])

		windows := (len(text)-WindowSize)/WindowStep + 1
		want := -1
		if at < windows*WindowStep {
			want = at
		}
		require.Equal(t, want, find4SSE41(text, windows, p), "at=%d", at)
	}
}
