package queue

import (
	"errors"
	"iter"

	"github.com/astrokit/chains/chain"
)

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

// Queue is a link-based FIFO. The zero value is NOT ready to use; call New.
type Queue[T comparable] struct {
	c *chain.Chain[T]
}

// New creates a Queue seeded with values in arrival order.
// Complexity: O(len(values)).
func New[T comparable](values ...T) *Queue[T] {
	return &Queue[T]{c: chain.New(values...)}
}

// NewFromSeq creates a Queue by enqueueing every element of seq in order.
func NewFromSeq[T comparable](seq iter.Seq[T]) *Queue[T] {
	return &Queue[T]{c: chain.NewFromSeq(seq)}
}

// Enqueue appends v at the rear of the queue. Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) { q.c.PushBack(v) }

// Add is an alias for Enqueue.
func (q *Queue[T]) Add(v T) { q.Enqueue(v) }

// Push is an alias for Enqueue.
func (q *Queue[T]) Push(v T) { q.Enqueue(v) }

// Dequeue removes and returns the value at the front.
// Returns ErrEmptyQueue on an empty queue. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	v, err := q.c.PopFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return v, nil
}

// Pop is an alias for Dequeue.
func (q *Queue[T]) Pop() (T, error) { return q.Dequeue() }

// Peek returns the front value without removing it.
// Returns ErrEmptyQueue on an empty queue. Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if q.c.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.c.Head().Value, nil
}

// Front is an alias for Peek.
func (q *Queue[T]) Front() (T, error) { return q.Peek() }

// Len returns the number of stored elements. Complexity: O(1).
func (q *Queue[T]) Len() int { return q.c.Len() }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.c.IsEmpty() }

// Clear resets the queue to empty. Complexity: O(1).
func (q *Queue[T]) Clear() { q.c.Clear() }

// Extend enqueues every element produced by seq, in iteration order.
func (q *Queue[T]) Extend(seq iter.Seq[T]) { q.c.Extend(seq) }

// Contains reports whether v is stored anywhere in the queue.
func (q *Queue[T]) Contains(v T) bool { return q.c.Contains(v) }

// Equal reports whether both queues hold equal values in the same
// front-to-rear order. Complexity: O(n).
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	if q == other {
		return true
	}
	if other == nil {
		return false
	}

	return q.c.Equal(other.c)
}

// Clone returns a new Queue with the same values in the same order.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{c: q.c.Clone()}
}

// All returns a lazy front-to-rear iterator over the stored values.
func (q *Queue[T]) All() iter.Seq[T] { return q.c.All() }

// Values returns the stored values front-to-rear as a flat slice.
func (q *Queue[T]) Values() []T { return q.c.Values() }

// String renders the queue front-to-rear as "{a, b, c}".
func (q *Queue[T]) String() string { return q.c.String() }
