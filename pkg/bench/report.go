package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// WriteTable writes results as an aligned table. Sizes and throughput are in
// SI units. The last column compares
// each result with the naive scanner on the same size when that was measured.
func WriteTable(w io.Writer, results []Result) error {
	naive := make(map[int]float64)
	for _, r := range results {
		if r.Strategy == Naive {
			naive[r.Size] = r.NsPerOp()
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "strategy\tsize\titerations\tns/op\tthroughput\tvs naive\t")
	for _, r := range results {
		speedup := "-"
		if base, ok := naive[r.Size]; ok && r.NsPerOp() > 0 {
			speedup = humanize.FtoaWithDigits(base/r.NsPerOp(), 2) + "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s/s\t%s\t\n",
			r.Strategy,
			humanize.Bytes(uint64(r.Size)),
			humanize.Comma(int64(r.Iterations)),
			humanize.FtoaWithDigits(r.NsPerOp(), 1),
			humanize.Bytes(uint64(r.BytesPerSecond())),
			speedup,
		)
	}
	return errors.Wrap(tw.Flush(), "writing results")
}
