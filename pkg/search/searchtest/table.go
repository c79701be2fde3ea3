// Package searchtest holds the fixed correctness table for 4-byte scanners
// and runners that check a scanner against it.
package searchtest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Case is one row of the table: Pattern first occurs in Text at Want.
type Case struct {
	Text    string
	Pattern string
	Want    int
}

// Find4Func is the signature of a 4-byte scanner.
type Find4Func func(text []byte, length int, pattern [4]byte) int

// IndexFunc is the signature of a general substring scanner.
type IndexFunc func(text, pattern []byte) int

// Find4Cases covers matches at the start, middle and end of the text, a one
// byte lead-in, extra pattern-prefix bytes right before the real match and
// decoy near-matches further ahead.
var Find4Cases = []Case{
	{"ooboo___", "oobo", 0},
	{"oobooo__", "oobo", 0},
	{"ooboobo_", "oobo", 0},
	{"_oobo___", "oobo", 1},
	{"ooobo___", "oobo", 1},
	{"__oobo__", "oobo", 2},
	{"_ooobo__", "oobo", 2},
	{"___oobo_", "oobo", 3},
	{"_oooobo_", "oobo", 3},
	{"____oobo", "oobo", 4},
	{"__oooobo", "oobo", 4},
	{"__boocoocb_oobo_____", "oobo", 11},
	{"__boocoocb__oobo____", "oobo", 12},
	{"__boocoocb__ooobo___", "oobo", 13},
	{"__boocoocb__oooobo__", "oobo", 14},
}

// Failure is a row the scanner got wrong.
type Failure struct {
	Case
	Got int
}

func (f Failure) String() string {
	return fmt.Sprintf("find(%q, %q) = %d, want %d", f.Text, f.Pattern, f.Got, f.Want)
}

// Verify runs fn over Find4Cases with the full text length and returns the
// rows it got wrong.
func Verify(fn Find4Func) []Failure {
	var failures []Failure
	for _, c := range Find4Cases {
		if got := fn([]byte(c.Text), len(c.Text), [4]byte([]byte(c.Pattern))); got != c.Want {
			failures = append(failures, Failure{Case: c, Got: got})
		}
	}
	return failures
}

// VerifyIndex runs fn over Find4Cases and returns the rows it got wrong.
func VerifyIndex(fn IndexFunc) []Failure {
	var failures []Failure
	for _, c := range Find4Cases {
		if got := fn([]byte(c.Text), []byte(c.Pattern)); got != c.Want {
			failures = append(failures, Failure{Case: c, Got: got})
		}
	}
	return failures
}

// Run checks every row of Find4Cases against fn. A wrong row is reported
// without stopping the remaining rows.
func Run(t assert.TestingT, fn Find4Func) bool {
	ok := true
	for _, c := range Find4Cases {
		got := fn([]byte(c.Text), len(c.Text), [4]byte([]byte(c.Pattern)))
		ok = assert.Equalf(t, c.Want, got, "find(%q, %q)", c.Text, c.Pattern) && ok
	}
	return ok
}

// RunIndex is Run for general substring scanners.
func RunIndex(t assert.TestingT, fn IndexFunc) bool {
	ok := true
	for _, c := range Find4Cases {
		got := fn([]byte(c.Text), []byte(c.Pattern))
		ok = assert.Equalf(t, c.Want, got, "find(%q, %q)", c.Text, c.Pattern) && ok
	}
	return ok
}
