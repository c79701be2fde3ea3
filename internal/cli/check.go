package cli

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeschkies/go-find4/pkg/search"
	"github.com/jeschkies/go-find4/pkg/search/searchtest"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the correctness table against every scanner",
		RunE: func(*cobra.Command, []string) error {
			return a.runCheck()
		},
	}
}

func (a *app) runCheck() error {
	failed := 0
	report := func(name string, failures []searchtest.Failure) {
		if len(failures) == 0 {
			fmt.Fprintf(a.out, "ok   %s\t%d cases\n", name, len(searchtest.Find4Cases))
			return
		}
		failed += len(failures)
		fmt.Fprintf(a.out, "FAIL %s\n", name)
		for _, f := range failures {
			fmt.Fprintf(a.out, "     %s\n", f)
		}
	}

	for _, impl := range search.Implementations() {
		report("find4/"+impl.Name, searchtest.Verify(impl.Find4))
	}
	report("naive", searchtest.VerifyIndex(search.NaiveIndex))

	if failed > 0 {
		level.Error(a.logger).Log("msg", "correctness check failed", "failures", failed)
		return errors.Errorf("%d case(s) failed", failed)
	}
	level.Info(a.logger).Log("msg", "correctness check passed", "kernel", search.Kernel())
	return nil
}
