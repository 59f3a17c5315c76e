package heapgc

import "testing"

func TestBufferStackReaderLenAndWordAt(t *testing.T) {
	r := bufferStackReader{base: 0x4000, words: []uintptr{1, 2, 3}}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	for i, want := range []uintptr{1, 2, 3} {
		addr, word := r.WordAt(i)
		if word != want {
			t.Errorf("WordAt(%d) word = %d, want %d", i, word, want)
		}
		if addr != r.base+uintptr(i)*wordSize {
			t.Errorf("WordAt(%d) addr = %x, want %x", i, addr, r.base+uintptr(i)*wordSize)
		}
	}
}

func TestNativeStackRangeLen(t *testing.T) {
	r := nativeStackRange{low: 100, high: 100 + uintptr(4*wordSize)}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4", r.Len())
	}

	empty := nativeStackRange{low: 200, high: 100}
	if empty.Len() != 0 {
		t.Errorf("Len() for inverted range = %d, want 0", empty.Len())
	}
}

func TestStackaddrIsNonZero(t *testing.T) {
	if stackaddr() == 0 {
		t.Error("stackaddr() returned 0")
	}
}

func TestStackRangeOrdersLowHigh(t *testing.T) {
	h := newTestHeap(t, WithHeapSize(1024))
	low, high := h.stackRange()
	if low > high {
		t.Errorf("stackRange() = (%x, %x), low > high", low, high)
	}
}
