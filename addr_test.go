package heapgc

import "testing"

func TestAddrOf(t *testing.T) {
	base := uintptr(0x1000)
	size := 256

	tests := []struct {
		name    string
		raw     uintptr
		wantOff Addr
		wantOK  bool
	}{
		{"at base", base, 0, true},
		{"middle", base + 100, 100, true},
		{"last byte", base + 255, 255, true},
		{"one past end", base + 256, 0, false},
		{"below base", base - 1, 0, false},
		{"far below", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, ok := addrOf(base, size, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("addrOf(%d) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && off != tt.wantOff {
				t.Errorf("addrOf(%d) = %d, want %d", tt.raw, off, tt.wantOff)
			}
		})
	}
}

func TestAddrRawRoundTrip(t *testing.T) {
	base := uintptr(0x2000)
	a := Addr(42)
	if got := a.raw(base); got != base+42 {
		t.Errorf("raw() = %d, want %d", got, base+42)
	}

	off, ok := addrOf(base, 256, a.raw(base))
	if !ok || off != a {
		t.Errorf("round trip through raw/addrOf = %d, %v, want %d, true", off, ok, a)
	}
}

func TestAlignUp(t *testing.T) {
	w := int(wordSize)
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{1, w},
		{w, w},
		{w + 1, w * 2},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.in); got != tt.want {
			t.Errorf("AlignUp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
