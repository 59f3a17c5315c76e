package heapgc

import (
	"runtime"
	"unsafe"
)

// Alloc returns an address inside the arena for a region of size bytes.
//
// Reuse is attempted first: the freed list is scanned in its natural
// (insertion) order for the first chunk at least as large as size. An
// exact match is handed over whole; a larger chunk is split, with the
// allocated piece taking exactly size bytes and a remainder descriptor
// carrying the surplus back into freed (the original implementation had
// this backwards, reusing the whole descriptor's original size — fixed
// here).
//
// If no freed chunk fits and the arena's bump pointer cannot satisfy the
// request, a full collection runs once and the request is retried; if it
// still cannot be satisfied, Alloc returns an error wrapping
// ErrOutOfMemory.
//
// size is passed through unmodified: Alloc does not round it up for
// alignment. Callers that care about alignment should pad size to a
// multiple of the platform's maximum scalar alignment themselves.
func (h *Heap) Alloc(size int) (Addr, error) {
	if err := h.checkOpen(); err != nil {
		return 0, err
	}
	if size <= 0 {
		return 0, invalidRequestf("alloc size must be positive, got %d", size)
	}

	if addr, ok := h.tryReuse(size); ok {
		return addr, nil
	}

	if int(h.bump)+size > h.size {
		if err := h.collectPhases(h.collectMask); err != nil {
			return 0, err
		}
		if addr, ok := h.tryReuse(size); ok {
			return addr, nil
		}
		if int(h.bump)+size > h.size {
			return 0, outOfMemoryf("requested %d bytes, %d available after collection", size, h.size-int(h.bump))
		}
	}

	return h.allocBump(size), nil
}

// tryReuse scans freed for the first chunk at least as large as size,
// splitting it if necessary, per the first-fit policy.
func (h *Heap) tryReuse(size int) (Addr, bool) {
	for i, c := range h.freed {
		switch {
		case c.size == size:
			h.freed = removeChunk(h.freed, i)
			h.allocated = append(h.allocated, c)
			h.emit(Event{Kind: EventAllocReuse, Addr: c.start, Size: size})
			return c.start, true
		case c.size > size:
			remainder := &chunk{start: c.start + Addr(size), size: c.size - size}
			c.size = size
			h.freed[i] = remainder
			h.allocated = append(h.allocated, c)
			h.emit(Event{Kind: EventAllocReuse, Addr: c.start, Size: size})
			return c.start, true
		}
	}
	return 0, false
}

// allocBump carves a fresh chunk off the arena's never-yet-used tail.
func (h *Heap) allocBump(size int) Addr {
	start := h.bump
	h.bump += Addr(size)
	c := &chunk{start: start, size: size}
	h.allocated = append(h.allocated, c)
	h.emit(Event{Kind: EventAllocBump, Addr: start, Size: size})
	return start
}

// Bytes returns the live bytes of the region at addr as a slice backed
// directly by the arena: writes through it are writes into the heap. The
// slice is only valid until the next collection that might compact (and
// thus relocate) the chunk at addr; callers that hold a chunk across a
// collection should re-derive the slice from the chunk's current address
// afterward rather than keep the old slice around.
func (h *Heap) Bytes(addr Addr, size int) []byte {
	start := int(addr)
	return h.bytes[start : start+size]
}

// Alloc allocates a zeroed T inside the heap and returns a pointer to it,
// the generic counterpart to Heap.Alloc for typed values. It mirrors the
// teacher arena's Alloc[T] helper, adapted to a fallible underlying
// allocator: the heap can run a collection (and therefore move existing
// allocations) to satisfy the request, so Alloc also returns an error.
func Alloc[T any](h *Heap) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	addr, err := h.Alloc(size)
	if err != nil {
		return nil, err
	}
	b := h.Bytes(addr, size)
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates a slice of n elements of type T inside the heap.
// The elements are zeroed. Returns (nil, nil) if n <= 0, matching the
// teacher arena's convention of treating a non-positive count as "no
// allocation" rather than an error.
func AllocSlice[T any](h *Heap, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	addr, err := h.Alloc(elemSize * n)
	if err != nil {
		return nil, err
	}
	b := h.Bytes(addr, elemSize*n)
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// KeepAlive calls runtime.KeepAlive on h, useful for preventing the Heap
// value itself from being collected by the Go runtime's own GC while a
// raw pointer derived from it is still in use in unsafe code.
func KeepAlive(h *Heap) {
	runtime.KeepAlive(h)
}
