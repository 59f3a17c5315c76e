package heapgc

import "sync"

// SafeHeap is a mutex-protected wrapper around Heap for callers that must
// touch the heap from more than one goroutine. It serializes every
// operation behind a single lock — it does not let collection run
// concurrently with an allocation, it just makes it safe to call from
// concurrent goroutines one at a time. The underlying stop-the-world,
// single-mutator-thread model is unchanged.
type SafeHeap struct {
	mu sync.Mutex
	h  *Heap
}

// NewSafeHeap constructs a Heap and wraps it for concurrent use.
func NewSafeHeap(opts ...Option) (*SafeHeap, error) {
	h, err := NewHeap(opts...)
	if err != nil {
		return nil, err
	}
	return &SafeHeap{h: h}, nil
}

// Alloc thread-safely delegates to Heap.Alloc.
func (s *SafeHeap) Alloc(size int) (Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Alloc(size)
}

// Bytes thread-safely delegates to Heap.Bytes.
func (s *SafeHeap) Bytes(addr Addr, size int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Bytes(addr, size)
}

// Collect thread-safely runs the requested collection phases. It is
// always available (not gated behind the heapdebug build tag) because
// SafeHeap is a production concurrency wrapper, not debug-only tooling:
// a caller managing its own collection schedule needs this regardless
// of build configuration.
func (s *SafeHeap) Collect(mask CollectOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.collectPhases(mask)
}

// Dispose thread-safely delegates to Heap.Dispose.
func (s *SafeHeap) Dispose() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Dispose()
}

// SetProfiler thread-safely delegates to Heap.SetProfiler.
func (s *SafeHeap) SetProfiler(p Profiler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.SetProfiler(p)
}

// SetProfilerLogOptions thread-safely delegates to Heap.SetProfilerLogOptions.
func (s *SafeHeap) SetProfilerLogOptions(mask RecordOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.SetProfilerLogOptions(mask)
}

// Metrics thread-safely delegates to Heap.Metrics.
func (s *SafeHeap) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Metrics()
}

// SafeAlloc thread-safely allocates a zeroed T inside the wrapped heap,
// the concurrency-safe counterpart to the package-level generic Alloc.
func SafeAlloc[T any](s *SafeHeap) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.h)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T
// inside the wrapped heap.
func SafeAllocSlice[T any](s *SafeHeap, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.h, n)
}
