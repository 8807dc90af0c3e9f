package builder

import "sync/atomic"

// Counter is the running section id counter.
//
// Next always returns a value strictly greater than every value it returned
// before, so section ids are never reused even after deletions.
type Counter struct {
	n atomic.Int64
}

// NewCounterAt creates a counter whose next value is start+1.
func NewCounterAt(start int) *Counter {
	c := &Counter{}
	c.n.Store(int64(start))
	return c
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	return int(c.n.Add(1))
}

// Current returns the last value handed out (or the starting value).
func (c *Counter) Current() int {
	return int(c.n.Load())
}
