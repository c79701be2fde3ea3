// Package bench times substring scanners against each other on generated
// text of increasing size.
package bench

import (
	"bytes"
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/jeschkies/go-find4/internal/textgen"
)

const (
	DefaultMin     = 8
	DefaultMax     = 2 << 16
	DefaultMult    = 8
	DefaultMinTime = 100 * time.Millisecond

	// cap on iterations per measurement, as in testing.B
	maxIterations = 1e9
)

var ErrWrongOffset = errors.New("strategy returned the wrong offset")

// sink keeps the compiler from dropping the timed calls.
var sink int

// Config selects what Run measures.
type Config struct {
	Sizes      []int
	Strategies []string
	MinTime    time.Duration
	Text       textgen.Config
}

// DefaultConfig measures every strategy over Range(8, 2<<16, 8).
func DefaultConfig() Config {
	return Config{
		Sizes:   Range(DefaultMin, DefaultMax, DefaultMult),
		MinTime: DefaultMinTime,
		Text:    textgen.DefaultConfig(),
	}
}

// Result is one measurement.
type Result struct {
	Strategy   string
	Size       int
	Bytes      int
	Offset     int
	Iterations int
	Elapsed    time.Duration
}

// NsPerOp is the mean time of one search.
func (r Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// BytesPerSecond is the scan throughput over the whole generated text.
func (r Result) BytesPerSecond() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return float64(r.Bytes) * 1e9 / ns
}

// Range returns lo, every power of mult strictly between lo and hi, and hi.
func Range(lo, hi, mult int) []int {
	if lo > hi {
		return nil
	}
	sizes := []int{lo}
	if mult > 1 {
		for p := 1; p < hi; p *= mult {
			if p > lo {
				sizes = append(sizes, p)
			}
		}
	}
	if hi != lo {
		sizes = append(sizes, hi)
	}
	return sizes
}

// Run generates one text per size and times every selected strategy on it.
// Before it is timed each strategy must report the first occurrence of the
// pattern, as found by bytes.Index. That is the appended copy unless the pool
// text already contains the pattern.
func Run(ctx context.Context, cfg Config, logger log.Logger) ([]Result, error) {
	strategies, err := Lookup(cfg.Strategies)
	if err != nil {
		return nil, err
	}
	gen, err := textgen.New(cfg.Text)
	if err != nil {
		return nil, errors.Wrap(err, "text generator")
	}
	if cfg.MinTime <= 0 {
		cfg.MinTime = DefaultMinTime
	}

	pattern := gen.Pattern()
	prepared := make([]IndexFunc, len(strategies))
	for i, s := range strategies {
		if prepared[i], err = s.Prepare(pattern); err != nil {
			return nil, errors.Wrapf(err, "preparing %s", s.Name)
		}
	}

	level.Info(logger).Log("msg", "running benchmarks", "strategies", len(strategies), "sizes", len(cfg.Sizes), "pattern", string(pattern))

	results := make([]Result, 0, len(strategies)*len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		text := gen.Text(size)
		want := bytes.Index(text, pattern)
		for i, s := range strategies {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			offset := prepared[i](text)
			if offset != want {
				return results, errors.Wrapf(ErrWrongOffset, "%s on %d bytes: got %d, want %d", s.Name, size, offset, want)
			}

			r := measure(ctx, prepared[i], text, cfg.MinTime)
			r.Strategy, r.Size, r.Offset = s.Name, size, offset
			results = append(results, r)

			level.Debug(logger).Log("msg", "measured", "strategy", s.Name, "size", size, "iterations", r.Iterations, "ns_per_op", r.NsPerOp())
		}
	}
	return results, nil
}

// measure grows the iteration count until a run lasts at least minTime, the
// way testing.B settles on b.N.
func measure(ctx context.Context, fn IndexFunc, text []byte, minTime time.Duration) Result {
	n := 1
	for {
		start := time.Now()
		for i := 0; i < n; i++ {
			sink = fn(text)
		}
		elapsed := time.Since(start)

		if elapsed >= minTime || n >= maxIterations || ctx.Err() != nil {
			return Result{Bytes: len(text), Iterations: n, Elapsed: elapsed}
		}
		n = predictN(n, elapsed, minTime)
	}
}

// predictN aims 20% past minTime, grows at most 100x and at least by one.
func predictN(last int, elapsed, minTime time.Duration) int {
	prev := float64(last)
	ns := float64(max(elapsed.Nanoseconds(), 1))
	n := float64(minTime.Nanoseconds()) * prev / ns
	n += n / 5
	n = min(n, 100*prev, maxIterations)
	return min(max(int(n), last+1), maxIterations)
}
