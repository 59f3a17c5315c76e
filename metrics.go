package heapgc

import (
	"fmt"

	"github.com/inhies/go-bytesize"
)

// SizeInUse returns the total number of bytes currently handed out to the
// mutator: the sum of every chunk in allocated. It does not include bytes
// sitting in freed waiting for reuse.
func (h *Heap) SizeInUse() int {
	sum := 0
	for _, c := range h.allocated {
		sum += c.size
	}
	return sum
}

// NumAllocated returns the number of chunks currently owned by the
// mutator.
func (h *Heap) NumAllocated() int {
	return len(h.allocated)
}

// NumFreed returns the number of reclaimed chunks currently available for
// reuse.
func (h *Heap) NumFreed() int {
	return len(h.freed)
}

// Bump returns the current bump offset: the number of bytes of the
// arena that have ever been handed out, whether or not they are still
// live.
func (h *Heap) Bump() int {
	return int(h.bump)
}

// Capacity returns the total size of the arena in bytes.
func (h *Heap) Capacity() int {
	return h.size
}

// Utilization returns the ratio of SizeInUse to Capacity, in [0, 1].
func (h *Heap) Utilization() float64 {
	if h.size == 0 {
		return 0
	}
	return float64(h.SizeInUse()) / float64(h.size)
}

// Metrics is a point-in-time snapshot of heap statistics. The yaml tags
// are exercised by cmd/heapdebug's snapshot subcommand.
type Metrics struct {
	SizeInUse    int     `yaml:"size_in_use"`
	NumAllocated int     `yaml:"num_allocated"`
	NumFreed     int     `yaml:"num_freed"`
	Bump         int     `yaml:"bump"`
	Capacity     int     `yaml:"capacity"`
	Utilization  float64 `yaml:"utilization"`
}

// Metrics returns a snapshot of the heap's current statistics.
func (h *Heap) Metrics() Metrics {
	return Metrics{
		SizeInUse:    h.SizeInUse(),
		NumAllocated: h.NumAllocated(),
		NumFreed:     h.NumFreed(),
		Bump:         h.Bump(),
		Capacity:     h.Capacity(),
		Utilization:  h.Utilization(),
	}
}

// String renders the metrics as a one-line human-readable summary, with
// byte counts formatted by go-bytesize (e.g. "10.00MB") rather than as
// raw integers. This backs the debug API's PrintSummary.
func (m Metrics) String() string {
	inUse := bytesize.New(float64(m.SizeInUse))
	capacity := bytesize.New(float64(m.Capacity))
	bump := bytesize.New(float64(m.Bump))
	return fmt.Sprintf("heap: %s in use / %s capacity, bump=%s, allocated=%d, freed=%d, utilization=%.2f%%",
		inUse, capacity, bump, m.NumAllocated, m.NumFreed, m.Utilization*100)
}
