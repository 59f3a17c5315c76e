//go:build !unix

package heapgc

import "unsafe"

// acquireArena falls back to a plain heap-allocated slice on platforms
// without an anonymous-mmap syscall wired up (notably Windows). The Go
// allocator aligns it to the platform's maximum scalar alignment, same as
// the mmap path.
func acquireArena(size int) (bytes []byte, base uintptr, unmap func([]byte) error, err error) {
	bytes = make([]byte, size)
	base = uintptr(unsafe.Pointer(&bytes[0]))
	return bytes, base, nil, nil
}
