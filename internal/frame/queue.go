// Package frame provides a single-threaded "run after the current paint"
// task queue.
package frame

// Queue collects callbacks to run on the next frame. It is not safe for
// concurrent use; hosts drive it from their event loop.
type Queue struct {
	pending []func()
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame schedules fn for the next Flush.
func (q *Queue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Flush runs the callbacks queued before the call, in order. Callbacks they
// request are deferred to the following frame. It returns how many ran.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
