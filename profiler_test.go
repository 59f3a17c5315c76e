package heapgc

import "testing"

func TestEmitRespectsRecordMask(t *testing.T) {
	h := newTestHeap(t, WithHeapSize(4096))

	var events []EventKind
	h.SetProfiler(ProfilerFunc(func(e Event) { events = append(events, e.Kind) }))
	h.SetProfilerLogOptions(recordBit(EventAllocBump))

	if _, err := h.Alloc(16); err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	if len(events) != 1 || events[0] != EventAllocBump {
		t.Errorf("events = %v, want only [EventAllocBump]", events)
	}
}

func TestEmitSkipsWhenNoProfilerAttached(t *testing.T) {
	h := newTestHeap(t, WithHeapSize(4096))
	// SetProfiler is never called; emit must be a no-op, not a panic.
	if _, err := h.Alloc(16); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
}

func TestEmitRecoversFromProfilerPanic(t *testing.T) {
	h := newTestHeap(t, WithHeapSize(4096))
	h.SetProfiler(ProfilerFunc(func(Event) { panic("boom") }))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped emit: %v", r)
		}
	}()
	if _, err := h.Alloc(16); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
}

func TestRecordAllEnablesEveryKind(t *testing.T) {
	for k := EventAllocBump; k <= EventDescriptorFree; k++ {
		if RecordAll&recordBit(k) == 0 {
			t.Errorf("RecordAll does not enable %v", k)
		}
	}
}

func TestEventKindString(t *testing.T) {
	if EventAllocBump.String() != "AllocBump" {
		t.Errorf("String() = %q, want %q", EventAllocBump.String(), "AllocBump")
	}
	if EventKind(999).String() != "Unknown" {
		t.Errorf("String() for unknown kind = %q, want %q", EventKind(999).String(), "Unknown")
	}
}
