package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/jeschkies/go-find4/pkg/search"
)

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and the active window kernel",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "find4 %s %s/%s kernel=%s sse4.1=%t\n",
				Version, runtime.GOOS, runtime.GOARCH, search.Kernel(), cpu.X86.HasSSE41)
		},
	}
}
