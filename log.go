package heapgc

import (
	"io"
	"log/slog"
)

// discardLogger is the default logger attached to a Heap: it drops every
// record, so callers that never opt into logging pay nothing for it.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
