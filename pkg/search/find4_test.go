package search

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/jeschkies/go-find4/pkg/search/searchtest"
	"github.com/stretchr/testify/require"
)

func TestFind4Table(t *testing.T) {
	for _, impl := range Implementations() {
		t.Run(impl.Name, func(t *testing.T) {
			searchtest.Run(t, impl.Find4)
			require.Empty(t, searchtest.Verify(impl.Find4))
		})
	}
}

func TestFind4Simple(t *testing.T) {
	for _, tt := range []struct {
		name    string
		text    []byte
		pattern string
		index   int
	}{
		{"empty", nil, "oobo", -1},
		{"shorter than pattern", []byte("oob"), "oobo", -1},
		{"exact", []byte("oobo"), "oobo", 0},
		{"no match", []byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit."), "oobo", -1},
		{"second window", []byte("Lorem ipsum dolor sit amet"), "amet", 22},
		{"straddles windows", []byte("________xyzb____"), "xyzb", 8},
		{"last lane of window", []byte("_______xyzb_____"), "xyzb", 7},
		{"zero bytes", []byte{0, 0, 0, 0, 0, 1, 2, 3, 0, 0}, "\x00\x01\x02\x03", 4},
		{"zero pattern in short text", []byte{1, 0, 0, 0, 0}, "\x00\x00\x00\x00", 1},
		{"high bytes", []byte{0xff, 0xfe, 0x00, 0xff, 0xfe, 0xfd, 0xfc}, "\xff\xfe\xfd\xfc", 3},
		{"first of two", []byte("..xyzb..xyzb.."), "xyzb", 2},
		{"benchmark tail", []byte("ABCDEFGHxyzb____"), "xyzb", 8},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for _, impl := range Implementations() {
				i := impl.Find4(tt.text, len(tt.text), [4]byte([]byte(tt.pattern)))
				require.Equal(t, tt.index, i, impl.Name)
			}
			require.Equal(t, tt.index, Index4(tt.text, [4]byte([]byte(tt.pattern))))
		})
	}
}

func TestFind4TailCoverage(t *testing.T) {
	pattern := [4]byte{'o', 'o', 'b', 'o'}

	// every offset of every length up to 4 windows, with no padding at all
	for n := 0; n <= 64; n++ {
		for at := 0; at+4 <= n; at++ {
			text := bytes.Repeat([]byte{'_'}, n)
			copy(text[at:], pattern[:])
			for _, impl := range Implementations() {
				require.Equal(t, at, impl.Find4(text, n, pattern), "%s: len=%d at=%d", impl.Name, n, at)
			}
		}
	}
}

func TestFind4Padding(t *testing.T) {
	pattern := [4]byte{'x', 'y', 'z', 'b'}

	t.Run("match running into padding", func(t *testing.T) {
		text := []byte("______xyzb")
		for _, impl := range Implementations() {
			require.Equal(t, 6, impl.Find4(text, 8, pattern), impl.Name)
		}
	})

	t.Run("window starts past the truncated length", func(t *testing.T) {
		// length 7 truncates to 4, so only the window at 0 is scanned
		text := []byte("________xyzb____")
		for _, impl := range Implementations() {
			require.Equal(t, -1, impl.Find4(text, 7, pattern), impl.Name)
		}
	})

	t.Run("length bounds", func(t *testing.T) {
		require.Panics(t, func() { Find4([]byte("abcd"), 5, pattern) })
		require.Panics(t, func() { Find4([]byte("abcd"), -1, pattern) })
		require.Equal(t, -1, Find4([]byte("xyzb"), 0, pattern))
	})
}

func TestFind4MatchesBytesIndex(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := []byte("oob_")

	for i := 0; i < 2000; i++ {
		text := make([]byte, rnd.Intn(80))
		for j := range text {
			text[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		var pattern [4]byte
		for j := range pattern {
			pattern[j] = alphabet[rnd.Intn(len(alphabet))]
		}

		want := bytes.Index(text, pattern[:])
		for _, impl := range Implementations() {
			require.Equal(t, want, impl.Find4(text, len(text), pattern), "%s: %q in %q", impl.Name, pattern, text)
		}
		require.Equal(t, want, NaiveIndex(text, pattern[:]), "naive: %q in %q", pattern, text)
	}
}

func TestFind4Idempotent(t *testing.T) {
	text := []byte("__boocoocb__ooobo___")
	snapshot := bytes.Clone(text)
	pattern := [4]byte{'o', 'o', 'b', 'o'}

	first := Index4(text, pattern)
	require.Equal(t, first, Index4(text, pattern))
	require.Equal(t, 13, first)
	require.Equal(t, snapshot, text)
}

func TestKernel(t *testing.T) {
	impls := Implementations()
	require.NotEmpty(t, impls)
	require.Equal(t, KernelGeneric, impls[0].Name)
	require.Equal(t, impls[len(impls)-1].Name, Kernel())

	// callers get a copy
	impls[0].Name = "changed"
	require.Equal(t, KernelGeneric, Implementations()[0].Name)
}

func FuzzIndex4(f *testing.F) {
	for _, c := range searchtest.Find4Cases {
		f.Add([]byte(c.Text), []byte(c.Pattern))
	}
	f.Fuzz(func(t *testing.T, text, p []byte) {
		if len(p) < 4 {
			return
		}
		pattern := [4]byte(p)
		want := bytes.Index(text, pattern[:])
		for _, impl := range Implementations() {
			if got := impl.Find4(text, len(text), pattern); got != want {
				t.Fatalf("%s: Find4(%q, %q) = %d, want %d", impl.Name, text, pattern, got, want)
			}
		}
	})
}

func BenchmarkFind4(b *testing.B) {
	pattern := [4]byte{'x', 'y', 'z', 'b'}
	for _, size := range []int{8, 64, 512, 4096, 32768, 131072} {
		text := append(bytes.Repeat([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), size/26+1)[:size], "xyzb____"...)
		for _, impl := range Implementations() {
			b.Run(fmt.Sprintf("%s/%d", impl.Name, size), func(b *testing.B) {
				b.SetBytes(int64(len(text)))
				for n := 0; n < b.N; n++ {
					if impl.Find4(text, len(text), pattern) != size {
						b.Fail()
					}
				}
			})
		}
		b.Run(fmt.Sprintf("naive/%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for n := 0; n < b.N; n++ {
				if NaiveIndex(text, pattern[:]) != size {
					b.Fail()
				}
			}
		})
		b.Run(fmt.Sprintf("bytes.Index/%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for n := 0; n < b.N; n++ {
				if bytes.Index(text, pattern[:]) != size {
					b.Fail()
				}
			}
		})
	}
}
