package heapgc

// collectPhases runs the phases selected by mask, always in the order
// Mark, Sweep, Compact, Free. A production call passes CollectAll; Alloc
// does exactly that when the arena is exhausted. Selecting phases
// individually is a debug/testing affordance: running Compact without
// Free, for example, leaves stale freed descriptors referencing bytes
// that compaction has since overwritten, which is documented behavior,
// not a defect, for a collector whose only caller of partial masks is a
// test.
//
// This is unexported so it is reachable from Alloc and SafeHeap in every
// build; Collect, the exported debug-build entry point with the same
// behavior, is declared in debug.go.
func (h *Heap) collectPhases(mask CollectOption) error {
	if err := h.checkOpen(); err != nil {
		return err
	}
	if mask&Mark != 0 {
		h.mark()
	}
	if mask&Sweep != 0 {
		h.sweep()
	}
	if mask&Compact != 0 {
		h.compact()
	}
	if mask&Free != 0 {
		h.drainFreed()
	}
	return nil
}
