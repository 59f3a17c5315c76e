package heapgc

// compact slides every live chunk toward the arena base, in ascending
// start order, to coalesce free space. It does not itself touch freed;
// draining freed's now-stale descriptors is the separate Free sub-phase
// (see collect.go), fused with Compact by CollectAll but selectable
// independently for diagnostics.
func (h *Heap) compact() {
	h.emit(Event{Kind: EventCompactStart})

	h.sortAllocatedByStart()

	dst := Addr(0)
	for _, c := range h.allocated {
		if c.start != dst {
			copy(h.bytes[int(dst):int(dst)+c.size], h.bytes[int(c.start):int(c.start)+c.size])
			c.start = dst
		}
		dst += Addr(c.size)
	}
	h.bump = dst

	h.emit(Event{Kind: EventCompactEnd})
}

// drainFreed destroys every descriptor in freed and empties the
// collection. Safe to call unconditionally: if compact hasn't run, the
// bytes those descriptors cover are still genuinely free, so dropping the
// bookkeeping for them only loses the ability to reuse that span until
// the next compaction recomputes it from bump.
func (h *Heap) drainFreed() {
	for range h.freed {
		h.emit(Event{Kind: EventDescriptorFree})
	}
	h.freed = nil
}
