package heapgc

// chunk describes one contiguous region inside the arena. start is an
// offset relative to the arena base, not a raw address (see addr.go).
// marked is transient: valid only between the start of mark and the end
// of sweep, and cleared unconditionally at the end of sweep.
type chunk struct {
	start  Addr
	size   int
	marked bool
}

// end returns the offset one past the last byte this chunk covers.
func (c *chunk) end() Addr {
	return c.start + Addr(c.size)
}

// contains reports whether the raw address raw, already known to be
// base-relative offset off, falls inside this chunk's extent.
func (c *chunk) containsOffset(off Addr) bool {
	return c.start <= off && off < c.end()
}

// removeChunk removes the chunk at index i from list, preserving the
// relative order of the remaining elements (needed so "natural order"
// first-fit scans over freed stay stable across splits).
func removeChunk(list []*chunk, i int) []*chunk {
	return append(list[:i], list[i+1:]...)
}
