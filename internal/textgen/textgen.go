// Package textgen builds benchmark haystacks: pseudo-random text of a given
// length followed by the pattern and a few filler bytes.
package textgen

import (
	"math/rand"

	"github.com/pkg/errors"
)

const (
	DefaultPoolSize = 100
	DefaultPattern  = "xyzb"
	DefaultFiller   = "____"
	DefaultSeed     = 1

	// pool characters are 'A' + [0, poolSpan)
	poolSpan = 55
)

var (
	ErrEmptyPool    = errors.New("character pool is empty")
	ErrPatternWidth = errors.New("pattern must be 4 bytes")
)

// Config describes a family of generated texts.
type Config struct {
	Seed     int64
	PoolSize int
	Pattern  string
	Filler   string
}

// DefaultConfig mirrors the classic setup: a 100 character pool, "xyzb" and
// 4 bytes of filler.
func DefaultConfig() Config {
	return Config{
		Seed:     DefaultSeed,
		PoolSize: DefaultPoolSize,
		Pattern:  DefaultPattern,
		Filler:   DefaultFiller,
	}
}

// Validate checks the config can produce texts for 4-byte scanners.
func (c Config) Validate() error {
	if c.PoolSize <= 0 {
		return errors.Wrapf(ErrEmptyPool, "pool size %d", c.PoolSize)
	}
	if len(c.Pattern) != 4 {
		return errors.Wrapf(ErrPatternWidth, "pattern %q", c.Pattern)
	}
	return nil
}

// Pool is a read-only set of characters the generated text cycles through.
type Pool []byte

// NewPool draws size characters in 'A'..'w' from r.
func NewPool(r *rand.Rand, size int) Pool {
	p := make(Pool, size)
	for i := range p {
		p[i] = 'A' + byte(r.Intn(poolSpan))
	}
	return p
}

// Generator produces texts for one Config.
type Generator struct {
	pool    Pool
	pattern string
	filler  string
}

// New validates cfg and draws its pool.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		pool:    NewPool(rand.New(rand.NewSource(cfg.Seed)), cfg.PoolSize),
		pattern: cfg.Pattern,
		filler:  cfg.Filler,
	}, nil
}

// Pattern returns the pattern appended to every text.
func (g *Generator) Pattern() []byte {
	return []byte(g.pattern)
}

// Text returns n pool characters followed by the pattern and the filler.
func (g *Generator) Text(n int) []byte {
	return Generate(g.pool, n, g.pattern, g.filler)
}

// Generate writes n characters cycling through pool starting at its second
// entry, then pattern, then filler. It panics on an empty pool when n > 0.
func Generate(pool Pool, n int, pattern, filler string) []byte {
	text := make([]byte, 0, n+len(pattern)+len(filler))
	for i := 1; i <= n; i++ {
		text = append(text, pool[i%len(pool)])
	}
	text = append(text, pattern...)
	return append(text, filler...)
}
