package document

import "sync/atomic"

// UntitledCounter hands out untitled-buffer numbers. The zero value starts
// at 0 and is safe for concurrent use; numbers are never reused.
type UntitledCounter struct {
	n atomic.Int64
}

// Next returns the current number and advances the counter.
func (c *UntitledCounter) Next() int {
	return int(c.n.Add(1) - 1)
}

// DefaultUntitledCounter is the process-wide counter used by New unless
// WithUntitledCounter overrides it.
var DefaultUntitledCounter = &UntitledCounter{}
