package heapgc

import (
	"fmt"
	"log/slog"
	"sort"
)

// DefaultHeapSize is the reference arena size, matching the original
// implementation's compile-time HEAP_SIZE constant: 240 MiB.
const DefaultHeapSize = 240 * 1024 * 1024

// CollectOption selects a subset of collection phases. Phases always run
// in the order Mark, Sweep, Compact, Free regardless of what order the
// bits are named in.
type CollectOption uint8

const (
	Mark CollectOption = 1 << iota
	Sweep
	Compact
	Free

	// CollectAll runs every phase; this is what Alloc uses internally on
	// arena exhaustion.
	CollectAll = Mark | Sweep | Compact | Free
)

// Heap is a fixed-size, single-arena, mark-sweep-compact managed heap.
//
// A Heap is not safe for concurrent use: it performs no internal locking,
// matching the stop-the-world, single-mutator-thread model this collector
// is built around. Wrap it in SafeHeap if more than one goroutine must
// touch it.
type Heap struct {
	base  uintptr // address of byte 0 of the arena
	bytes []byte  // backing storage for the arena
	size  int     // capacity of the arena in bytes

	bump Addr // offset of the first never-yet-used byte

	allocated []*chunk
	freed     []*chunk

	stackTop    uintptr // recorded at construction; upper bound for mark's scan
	stackReader StackReader // test-only override; nil selects the real stack

	profiler     Profiler
	profilerMask RecordOption

	collectMask CollectOption // phases Alloc runs automatically on exhaustion

	logger *slog.Logger

	closed bool
	unmap  func([]byte) error // platform-specific release; nil for the plain-slice arena
}

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithHeapSize overrides DefaultHeapSize.
func WithHeapSize(size int) Option {
	return func(h *Heap) { h.size = size }
}

// WithProfiler attaches p as the heap's profiler.
func WithProfiler(p Profiler) Option {
	return func(h *Heap) { h.profiler = p }
}

// WithProfilerLogOptions sets the initial record mask.
func WithProfilerLogOptions(mask RecordOption) Option {
	return func(h *Heap) { h.profilerMask = mask }
}

// WithLogger attaches a structured logger for phase-transition debug
// records. The default logger discards every record.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Heap) { h.logger = logger }
}

// WithCollectMask overrides which phases Alloc runs automatically when
// the arena is exhausted. Production code should leave this at the
// default, CollectAll; debug builds use it to exercise partial
// collections deliberately.
func WithCollectMask(mask CollectOption) Option {
	return func(h *Heap) { h.collectMask = mask }
}

// NewHeap acquires a fresh arena and returns an owning handle.
//
// Each test, or each embedding scenario that genuinely needs more than
// one independent heap, should construct its own Heap rather than share a
// process-wide instance. Compiler-generated code, which expects a single
// process-wide heap reached through bare function calls, should use
// Init/Dispose/Instance instead (see singleton.go); those are a thin
// wrapper around exactly this constructor.
func NewHeap(opts ...Option) (*Heap, error) {
	h := &Heap{
		size:         DefaultHeapSize,
		profilerMask: RecordAll,
		collectMask:  CollectAll,
		logger:       discardLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.size <= 0 {
		return nil, invalidRequestf("heap size must be positive, got %d", h.size)
	}

	bytes, base, unmap, err := acquireArena(h.size)
	if err != nil {
		return nil, fmt.Errorf("heap: acquiring %d byte arena: %w", h.size, err)
	}
	h.bytes = bytes
	h.base = base
	h.unmap = unmap
	h.stackTop = stackaddr()

	h.logger.Debug("heap initialized", "size", h.size, "base", h.base)
	return h, nil
}

// Dispose releases the arena and all descriptors. Any method call after
// Dispose returns an error wrapping ErrUsageError.
func (h *Heap) Dispose() error {
	if err := h.checkOpen(); err != nil {
		return err
	}
	h.closed = true
	h.allocated = nil
	h.freed = nil
	bytes := h.bytes
	h.bytes = nil
	if h.unmap != nil {
		if err := h.unmap(bytes); err != nil {
			return fmt.Errorf("heap: releasing arena: %w", err)
		}
	}
	h.logger.Debug("heap disposed")
	return nil
}

func (h *Heap) checkOpen() error {
	if h.closed {
		return usageErrorf("heap used after Dispose")
	}
	return nil
}

// SetProfiler attaches p as the heap's profiler. A nil Profiler disables
// profiling.
func (h *Heap) SetProfiler(p Profiler) {
	h.profiler = p
}

// SetProfilerLogOptions sets the record mask controlling which event
// kinds reach the profiler.
func (h *Heap) SetProfilerLogOptions(mask RecordOption) {
	h.profilerMask = mask
}

// sortAllocatedByStart restores the start-ascending ordering compact
// depends on. Mark and sweep work regardless of order.
func (h *Heap) sortAllocatedByStart() {
	sort.Slice(h.allocated, func(i, j int) bool {
		return h.allocated[i].start < h.allocated[j].start
	})
}
