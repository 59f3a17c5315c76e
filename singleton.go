package heapgc

import "sync"

// Init, Dispose, Instance, and the package-level AllocBytes below are the
// contract compiler-generated code is expected to call: a single
// process-wide heap reached through bare function calls, matching the
// original implementation's Heap::the()/init()/dispose() singleton. They
// are a thin wrapper around NewHeap/Heap.Dispose; tests that need an
// independent heap per scenario should call NewHeap directly instead of
// going through this package-level singleton.
var (
	singletonMu sync.Mutex
	singleton   *Heap
)

// Init acquires the process-wide heap. A second call without an
// intervening Dispose returns an error wrapping ErrUsageError.
func Init(opts ...Option) error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return usageErrorf("Init called twice without an intervening Dispose")
	}
	h, err := NewHeap(opts...)
	if err != nil {
		return err
	}
	singleton = h
	return nil
}

// Dispose releases the process-wide heap. Calling it before Init returns
// an error wrapping ErrUsageError.
func Dispose() error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return usageErrorf("Dispose called before Init")
	}
	err := singleton.Dispose()
	singleton = nil
	return err
}

// Instance returns the process-wide heap. It returns an error wrapping
// ErrUsageError if called before Init or after Dispose.
func Instance() (*Heap, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		return nil, usageErrorf("Instance called before Init or after Dispose")
	}
	return singleton, nil
}

// AllocBytes allocates from the process-wide heap. It is the
// package-level counterpart to Heap.Alloc, for callers that use the
// Init/Dispose singleton contract instead of holding their own *Heap.
// Named distinctly from the generic Alloc[T] in alloc.go: Go resolves
// both to the same identifier regardless of type parameters, so a
// non-generic top-level Alloc here would collide with it.
func AllocBytes(size int) (Addr, error) {
	h, err := Instance()
	if err != nil {
		return 0, err
	}
	return h.Alloc(size)
}

// SetProfiler attaches p as the process-wide heap's profiler.
func SetProfiler(p Profiler) error {
	h, err := Instance()
	if err != nil {
		return err
	}
	h.SetProfiler(p)
	return nil
}

// SetProfilerLogOptions sets the process-wide heap's record mask.
func SetProfilerLogOptions(mask RecordOption) error {
	h, err := Instance()
	if err != nil {
		return err
	}
	h.SetProfilerLogOptions(mask)
	return nil
}
