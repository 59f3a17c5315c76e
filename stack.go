package heapgc

import "unsafe"

// StackReader yields the pointer-sized words of a captured range of
// memory, low to high address order. The real implementation reads
// genuine stack memory; tests substitute a bufferStackReader wrapping an
// in-memory slice, so mark can be exercised without any real native stack
// trickery.
type StackReader interface {
	// Len returns the number of words available.
	Len() int
	// WordAt returns the address and value of the i'th word, 0-based,
	// low-to-high.
	WordAt(i int) (addr uintptr, word uintptr)
}

// nativeStackRange reads real memory in [low, high) word by word. This is
// inherently unsafe and platform-dependent: it assumes every address in
// the range is both mapped and safe to read as a uintptr, which holds for
// genuine stack memory between two frame addresses captured moments
// apart, but would not hold for an arbitrary range.
type nativeStackRange struct {
	low, high uintptr
}

func (r nativeStackRange) Len() int {
	if r.high <= r.low {
		return 0
	}
	return int((r.high - r.low) / wordSize)
}

func (r nativeStackRange) WordAt(i int) (uintptr, uintptr) {
	addr := r.low + uintptr(i)*wordSize
	return addr, *(*uintptr)(unsafe.Pointer(addr))
}

// bufferStackReader is the mock StackReader used by tests: an in-memory
// slice of words with a synthetic base address, so tests can place a
// chunk's real start address at an arbitrary position in a fake "stack"
// without needing to manufacture actual stack memory.
type bufferStackReader struct {
	base  uintptr
	words []uintptr
}

func (b bufferStackReader) Len() int { return len(b.words) }

func (b bufferStackReader) WordAt(i int) (uintptr, uintptr) {
	return b.base + uintptr(i)*wordSize, b.words[i]
}

// stackaddr returns the address of a local variable in the caller's
// frame: the closest portable Go equivalent of the platform intrinsic
// "address of the current stack frame" the original implementation used
// (__builtin_frame_address(0)). Go's goroutine stacks can move (grow or
// shrink) between calls, so this value is only meaningful as an immediate
// snapshot, never stored across a point where the stack could have
// moved — Init and mark both take it and use it within the same call.
//
//go:noinline
func stackaddr() uintptr {
	var sentinel byte
	return uintptr(unsafe.Pointer(&sentinel))
}
