//go:build heapdebug

package heapgc

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
)

// Collect is the debug-build entry point for running collection phases
// directly, mirroring the source's HEAP_DEBUG-gated surface. Production
// code never needs it: Alloc already runs collectPhases internally when
// the arena is exhausted. It exists for tools (cmd/heapdebug) and tests
// built with -tags heapdebug that want to force a specific phase
// combination and inspect the result.
func (h *Heap) Collect(mask CollectOption) error {
	return h.collectPhases(mask)
}

// PrintContents writes every allocated and freed chunk to w, one per
// line, colorized when w is a colorable terminal. With no allocated
// chunks it writes "NO ALLOCATIONS"; with no freed chunks it writes "NO
// FREED CHUNKS", matching the source's print_contents.
func (h *Heap) PrintContents(w io.Writer) {
	if len(h.allocated) > 0 {
		fmt.Fprintf(w, "\nALLOCATED CHUNKS #%d\n", len(h.allocated))
		for _, c := range h.allocated {
			printChunkLine(w, c)
		}
	} else {
		fmt.Fprintln(w, "NO ALLOCATIONS")
	}
	if len(h.freed) > 0 {
		fmt.Fprintf(w, "\nFREED CHUNKS #%d\n", len(h.freed))
		for _, c := range h.freed {
			printChunkLine(w, c)
		}
	} else {
		fmt.Fprintln(w, "NO FREED CHUNKS")
	}
}

func printChunkLine(w io.Writer, c *chunk) {
	fmt.Fprintf(w, "marked: %v\nstart offset: %d\nsize: %d B\n\n", c.marked, c.start, c.size)
}

// PrintSummary writes a one-line metrics snapshot to w, via Metrics.String.
func (h *Heap) PrintSummary(w io.Writer) {
	fmt.Fprintln(w, h.Metrics().String())
}

// Colorable wraps an *os.File (typically os.Stdout or os.Stderr) with
// go-colorable's ANSI translation, so cmd/heapdebug's banner output
// around PrintContents/PrintSummary renders color on Windows consoles
// that need it and passes through unchanged everywhere else.
func Colorable(f *os.File) io.Writer {
	return colorable.NewColorable(f)
}
