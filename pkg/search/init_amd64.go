//go:build amd64 && !noasm

package search

import (
	"golang.org/x/sys/cpu"
)

// MPSADBW needs SSE4.1; PCMPEQW and PMOVMSKB are SSE2.
var hasSSE41 = cpu.X86.HasSSE41

func init() {
	if !hasSSE41 {
		return
	}
	kernel = KernelSSE41
	findWindows = find4SSE41
	implementations = append(implementations, Implementation{Name: KernelSSE41, Find4: Find4})
}
