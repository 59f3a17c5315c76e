package heapgc

import (
	"errors"
	"fmt"
)

// Sentinel errors checkable with errors.Is. Every error this package
// returns wraps exactly one of these.
var (
	// ErrInvalidRequest is returned by Alloc when size <= 0.
	ErrInvalidRequest = errors.New("invalid allocation request")

	// ErrOutOfMemory is returned by Alloc when the arena cannot satisfy
	// the request even after a full collection.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrUsageError is returned when the public API is called in the
	// wrong lifecycle order: Alloc before Init, a second Init, or any
	// call after Dispose.
	ErrUsageError = errors.New("heap used out of lifecycle order")

	// ErrProfilerEmitFailure wraps a panic recovered from a caller-supplied
	// Profiler. It is logged and otherwise dropped; it never reaches the
	// mutator through a return value.
	ErrProfilerEmitFailure = errors.New("profiler emit failure")
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("heap: "+format+": %w", append(args, ErrUsageError)...)
}

func invalidRequestf(format string, args ...any) error {
	return fmt.Errorf("heap: "+format+": %w", append(args, ErrInvalidRequest)...)
}

func outOfMemoryf(format string, args ...any) error {
	return fmt.Errorf("heap: "+format+": %w", append(args, ErrOutOfMemory)...)
}
