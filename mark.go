package heapgc

// mark discovers live chunks by treating the native call stack as a set
// of candidate pointers.
//
// Roots are the contiguous range [stackLow, stackHigh): one bound comes
// from the current call's frame, the other is stackTop, recorded when the
// heap was constructed. The collector reads that range word by word and,
// for every word that numerically falls inside a still-unmarked chunk's
// extent, marks the chunk and keeps scanning.
//
// This corrects the original implementation's bug where mark recursed and
// returned immediately after marking a single chunk, aborting the rest of
// the stack scan; here the outer scan always runs to completion.
func (h *Heap) mark() int {
	h.emit(Event{Kind: EventMarkStart})

	reader := h.stackReader
	if reader == nil {
		low, high := h.stackRange()
		reader = nativeStackRange{low: low, high: high}
	}

	worklist := make([]*chunk, len(h.allocated))
	copy(worklist, h.allocated)

	marked := 0
	for i := 0; i < reader.Len() && len(worklist) > 0; i++ {
		_, word := reader.WordAt(i)
		off, ok := addrOf(h.base, h.size, word)
		if !ok {
			continue
		}
		for j, c := range worklist {
			if !c.containsOffset(off) {
				continue
			}
			if !c.marked {
				c.marked = true
				marked++
			}
			worklist = removeChunk(worklist, j)
			break // keep scanning the stack; do not abort the outer loop
		}
	}

	h.emit(Event{Kind: EventMarkEnd})
	return marked
}

// stackRange computes the [low, high) bound for the real stack scan: the
// lower of the current frame address and stackTop is the low bound, the
// higher is the high bound.
func (h *Heap) stackRange() (low, high uintptr) {
	current := stackaddr()
	if current < h.stackTop {
		return current, h.stackTop
	}
	return h.stackTop, current
}
