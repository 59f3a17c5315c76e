// Package heapgc implements a conservative, stop-the-world, mark-sweep
// garbage collector with compaction for a managed heap backed by a single
// fixed-size contiguous arena.
//
// # Overview
//
// Client code (typically generated by a compiler targeting this runtime)
// obtains raw memory regions through a single allocation primitive,
// [Heap.Alloc]. The collector reclaims regions that are no longer
// referenced by scanning the native call stack conservatively for values
// that look like interior pointers into the arena — any stack word that
// numerically falls inside a live chunk's extent counts as a reference,
// whether or not it actually is one.
//
// # Basic Usage
//
//	h, err := heapgc.NewHeap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Dispose()
//
//	addr, err := h.Alloc(64)
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf := h.Bytes(addr, 64)
//
// Compiler-generated code, which expects a single process-wide heap
// reached through bare function calls rather than a value it threads
// through every call, uses the package-level [Init]/[Dispose]/[Instance]
// wrapper instead:
//
//	if err := heapgc.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer heapgc.Dispose()
//
//	addr, err := heapgc.AllocBytes(64)
//
// # Collection
//
// A collection runs mark, sweep, compact, and free in that order. [Heap.Alloc]
// triggers a full collection automatically when the arena cannot satisfy a
// request; a debug build (tag heapdebug) exposes a restricted subset of
// phases directly for diagnostics and testing.
//
// # Thread Safety
//
// [Heap] performs no internal locking and assumes a single mutator thread,
// matching the stop-the-world model this collector is built around. Callers
// that must touch the heap from more than one goroutine can wrap it in
// [SafeHeap], which serializes every call behind a single mutex rather than
// enabling concurrent collection.
//
// # Non-goals
//
// Generational or incremental collection, concurrent mutator/collector
// execution, precise (type-accurate) root scanning, per-object finalizers,
// multi-arena or growable heaps.
package heapgc
