package heapgc

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage exercises request-scoped heap usage: one heap
// constructed and disposed per simulated request, the idiom this
// collector is built around (see ExampleHeap_webServer), against the
// equivalent builtin-allocation-plus-runtime-GC baseline.
func BenchmarkRealisticUsage(b *testing.B) {
	b.Run("ManySmallAllocs/Heap", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			h, err := NewHeap(WithHeapSize(64 * 1024))
			if err != nil {
				b.Fatalf("NewHeap: %v", err)
			}
			for j := 0; j < 100; j++ {
				if _, err := h.Alloc(64); err != nil {
					b.Fatalf("Alloc(64): %v", err)
				}
			}
			h.Dispose()
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	type TestStruct struct {
		ID   int64
		Data [56]byte
	}

	b.Run("StructAllocs/Heap", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			h, err := NewHeap(WithHeapSize(64 * 1024))
			if err != nil {
				b.Fatalf("NewHeap: %v", err)
			}
			for j := 0; j < 50; j++ {
				s, err := Alloc[TestStruct](h)
				if err != nil {
					b.Fatalf("Alloc[TestStruct]: %v", err)
				}
				s.ID = int64(j)
			}
			h.Dispose()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			structs := make([]*TestStruct, 50)
			for j := 0; j < 50; j++ {
				structs[j] = &TestStruct{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	b.Run("BufferReuse/Heap", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			h, err := NewHeap(WithHeapSize(1024 * 1024))
			if err != nil {
				b.Fatalf("NewHeap: %v", err)
			}
			for j := 0; j < 10; j++ {
				a1, err := h.Alloc(1024)
				if err != nil {
					b.Fatalf("Alloc(1024): %v", err)
				}
				a2, err := h.Alloc(2048)
				if err != nil {
					b.Fatalf("Alloc(2048): %v", err)
				}
				a3, err := h.Alloc(512)
				if err != nil {
					b.Fatalf("Alloc(512): %v", err)
				}
				h.Bytes(a1, 1024)[0] = byte(j)
				h.Bytes(a2, 2048)[0] = byte(j)
				h.Bytes(a3, 512)[0] = byte(j)
			}
			h.Dispose()
		}
	})

	b.Run("BufferReuse/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buffers := make([][]byte, 30)
			for j := 0; j < 10; j++ {
				buffers[j*3] = make([]byte, 1024)
				buffers[j*3+1] = make([]byte, 2048)
				buffers[j*3+2] = make([]byte, 512)

				buffers[j*3][0] = byte(j)
				buffers[j*3+1][0] = byte(j)
				buffers[j*3+2][0] = byte(j)
			}
			if i%5 == 0 {
				runtime.GC()
			}
		}
	})

	b.Run("NoGCPressure/Heap", func(b *testing.B) {
		h, err := NewHeap(WithHeapSize(1024 * 1024))
		if err != nil {
			b.Fatalf("NewHeap: %v", err)
		}
		defer h.Dispose()
		runtime.GC()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// Alloc runs a collection internally on exhaustion, so no
			// explicit collection call is needed here.
			if _, err := h.Alloc(128); err != nil {
				b.Fatalf("Alloc(128): %v", err)
			}
		}
	})

	b.Run("NoGCPressure/Builtin", func(b *testing.B) {
		runtime.GC()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 128)
		}
	})
}
