//go:build unix

package heapgc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// acquireArena maps size bytes of anonymous, private memory, the unix
// analogue of the original implementation's single malloc(HEAP_SIZE) call
// to the host allocator. The returned unmap function must be called
// exactly once, at Dispose.
func acquireArena(size int) (bytes []byte, base uintptr, unmap func([]byte) error, err error) {
	bytes, err = unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, 0, nil, err
	}
	base = uintptr(unsafe.Pointer(&bytes[0]))
	return bytes, base, unix.Munmap, nil
}
