package cli

import (
	"context"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/jeschkies/go-find4/internal/textgen"
	"github.com/jeschkies/go-find4/pkg/bench"
)

func (a *app) newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every strategy on generated text of growing size",
		Long: `bench generates text of each size from a pseudo-random character pool,
appends the pattern and some filler, checks that every strategy finds the
pattern at the right offset and times it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.Int("min", bench.DefaultMin, "smallest text size")
	f.Int("max", bench.DefaultMax, "largest text size")
	f.Int("mult", bench.DefaultMult, "size multiplier between min and max")
	f.StringSlice("strategy", nil, "strategies to run, repeatable (default all)")
	f.Duration("benchtime", bench.DefaultMinTime, "minimum run time per measurement")
	f.Int64("seed", textgen.DefaultSeed, "seed of the character pool")
	f.Int("pool-size", textgen.DefaultPoolSize, "size of the character pool")
	f.String("pattern", textgen.DefaultPattern, "4-byte pattern appended to the text")
	f.String("filler", textgen.DefaultFiller, "bytes appended after the pattern")

	for key, flag := range map[string]string{
		"bench.min":        "min",
		"bench.max":        "max",
		"bench.mult":       "mult",
		"bench.strategies": "strategy",
		"bench.benchtime":  "benchtime",
		"text.seed":        "seed",
		"text.pool_size":   "pool-size",
		"text.pattern":     "pattern",
		"text.filler":      "filler",
	} {
		cobra.CheckErr(a.v.BindPFlag(key, f.Lookup(flag)))
	}
	return cmd
}

func (a *app) benchConfig() bench.Config {
	return bench.Config{
		Sizes:      bench.Range(a.v.GetInt("bench.min"), a.v.GetInt("bench.max"), a.v.GetInt("bench.mult")),
		Strategies: a.v.GetStringSlice("bench.strategies"),
		MinTime:    a.v.GetDuration("bench.benchtime"),
		Text: textgen.Config{
			Seed:     a.v.GetInt64("text.seed"),
			PoolSize: a.v.GetInt("text.pool_size"),
			Pattern:  a.v.GetString("text.pattern"),
			Filler:   a.v.GetString("text.filler"),
		},
	}
}

func (a *app) runBench(ctx context.Context) error {
	cfg := a.benchConfig()
	level.Debug(a.logger).Log("msg", "bench config", "sizes", len(cfg.Sizes), "benchtime", cfg.MinTime, "pattern", cfg.Text.Pattern)

	results, err := bench.Run(ctx, cfg, a.logger)
	if err != nil {
		return err
	}
	return bench.WriteTable(a.out, results)
}
