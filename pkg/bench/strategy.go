package bench

import (
	"bytes"
	"strings"
	"unsafe"

	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"

	"github.com/jeschkies/go-find4/pkg/search"
)

// Strategy names.
const (
	Naive       = "naive"
	Find4       = "find4"
	BytesIndex  = "bytes.Index"
	StringIndex = "strings.Index"
	AhoCorasick = "ahocorasick"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrPatternWidth    = errors.New("strategy needs a 4 byte pattern")
)

// IndexFunc returns the offset of the prepared pattern in text or -1.
type IndexFunc func(text []byte) int

// Strategy is a named way of finding a pattern. Prepare does any per-pattern
// work up front so that only the search itself is timed.
type Strategy struct {
	Name    string
	Prepare func(pattern []byte) (IndexFunc, error)
}

// Strategies returns every strategy: the naive scanner, one entry per Find4
// implementation usable on this CPU, and the library baselines.
func Strategies() []Strategy {
	s := []Strategy{{Name: Naive, Prepare: prepareNaive}}
	for _, impl := range search.Implementations() {
		s = append(s, Strategy{Name: Find4 + "/" + impl.Name, Prepare: prepareFind4(impl.Find4)})
	}
	return append(s,
		Strategy{Name: BytesIndex, Prepare: prepareBytesIndex},
		Strategy{Name: StringIndex, Prepare: prepareStringsIndex},
		Strategy{Name: AhoCorasick, Prepare: prepareAhoCorasick},
	)
}

// Lookup returns the strategies with the given names, in order. A name may
// also be a prefix ending in "/" or the bare "find4", which selects every
// Find4 implementation. No names selects everything.
func Lookup(names []string) ([]Strategy, error) {
	all := Strategies()
	if len(names) == 0 {
		return all, nil
	}

	var out []Strategy
	for _, name := range names {
		found := false
		for _, s := range all {
			if s.Name == name || strings.HasPrefix(s.Name, strings.TrimSuffix(name, "/")+"/") {
				out = append(out, s)
				found = true
			}
		}
		if !found {
			return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
		}
	}
	return out, nil
}

// Names lists the names of strategies.
func Names(strategies []Strategy) []string {
	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name)
	}
	return names
}

func prepareNaive(pattern []byte) (IndexFunc, error) {
	return func(text []byte) int {
		return search.NaiveIndex(text, pattern)
	}, nil
}

func prepareFind4(find4 func([]byte, int, [4]byte) int) func([]byte) (IndexFunc, error) {
	return func(pattern []byte) (IndexFunc, error) {
		if len(pattern) != 4 {
			return nil, errors.Wrapf(ErrPatternWidth, "got %d bytes", len(pattern))
		}
		p := [4]byte(pattern)
		return func(text []byte) int {
			return find4(text, len(text), p)
		}, nil
	}
}

func prepareBytesIndex(pattern []byte) (IndexFunc, error) {
	return func(text []byte) int {
		return bytes.Index(text, pattern)
	}, nil
}

func prepareStringsIndex(pattern []byte) (IndexFunc, error) {
	substr := string(pattern)
	return func(text []byte) int {
		return strings.Index(unsafe.String(unsafe.SliceData(text), len(text)), substr)
	}, nil
}

func prepareAhoCorasick(pattern []byte) (IndexFunc, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	automaton, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building automaton")
	}
	return func(text []byte) int {
		m := automaton.Find(text, 0)
		if m == nil {
			return -1
		}
		return m.Start
	}, nil
}
