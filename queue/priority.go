package queue

import "iter"

// entry pairs a stored value with its integer priority. Entries are what the
// underlying chain links, so the scan can read priorities without a side
// table.
type entry[T comparable] struct {
	val T
	pri int
}

// PriorityQueue is a link-based queue served in ascending priority order:
// lower integers dequeue first, equal priorities dequeue FIFO.
// The zero value is NOT ready to use; call NewPriority.
type PriorityQueue[T comparable] struct {
	c *priChain[T]
}

// priChain is a minimal singly linked chain specialized to entries; kept
// local so entry never leaks into the public chain API.
type priChain[T comparable] struct {
	head *pnode[T]
	tail *pnode[T]
	size int
}

// pnode is a singly linked node carrying a priority next to its value.
type pnode[T comparable] struct {
	e    entry[T]
	next *pnode[T]
}

// NewPriority creates an empty PriorityQueue.
func NewPriority[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{c: &priChain[T]{}}
}

// Enqueue inserts v with the given priority, keeping the chain sorted by
// ascending priority. The new entry is placed after every existing entry of
// equal priority, so same-priority traffic stays FIFO.
// Complexity: O(n) scan, O(1) relink.
func (q *PriorityQueue[T]) Enqueue(v T, priority int) {
	n := &pnode[T]{e: entry[T]{val: v, pri: priority}}

	switch {
	case q.c.size == 0:
		q.c.head, q.c.tail = n, n

	case q.c.head.e.pri > priority:
		// New strict minimum: insert at the front.
		n.next = q.c.head
		q.c.head = n

	default:
		// Scan for the last entry with priority <= the new one.
		cur := q.c.head
		for cur.next != nil && cur.next.e.pri <= priority {
			cur = cur.next
		}
		n.next = cur.next
		cur.next = n
		if n.next == nil {
			q.c.tail = n
		}
	}

	q.c.size++
}

// Add is an alias for Enqueue.
func (q *PriorityQueue[T]) Add(v T, priority int) { q.Enqueue(v, priority) }

// Push is an alias for Enqueue.
func (q *PriorityQueue[T]) Push(v T, priority int) { q.Enqueue(v, priority) }

// Dequeue removes and returns the highest-priority (lowest integer) value.
// Returns ErrEmptyQueue on an empty queue. Complexity: O(1).
func (q *PriorityQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.c.size == 0 {
		return zero, ErrEmptyQueue
	}

	v := q.c.head.e.val
	q.c.head = q.c.head.next
	if q.c.size == 1 {
		q.c.tail = nil
	}
	q.c.size--

	return v, nil
}

// Pop is an alias for Dequeue.
func (q *PriorityQueue[T]) Pop() (T, error) { return q.Dequeue() }

// Peek returns the highest-priority value without removing it.
// Returns ErrEmptyQueue on an empty queue. Complexity: O(1).
func (q *PriorityQueue[T]) Peek() (T, error) {
	var zero T
	if q.c.size == 0 {
		return zero, ErrEmptyQueue
	}

	return q.c.head.e.val, nil
}

// PriorityPeek returns the front value together with its priority.
// Returns ErrEmptyQueue on an empty queue. Complexity: O(1).
func (q *PriorityQueue[T]) PriorityPeek() (T, int, error) {
	var zero T
	if q.c.size == 0 {
		return zero, 0, ErrEmptyQueue
	}

	return q.c.head.e.val, q.c.head.e.pri, nil
}

// Len returns the number of stored elements. Complexity: O(1).
func (q *PriorityQueue[T]) Len() int { return q.c.size }

// IsEmpty reports whether the queue holds no elements.
func (q *PriorityQueue[T]) IsEmpty() bool { return q.c.size == 0 }

// Clear resets the queue to empty. Complexity: O(1).
func (q *PriorityQueue[T]) Clear() {
	q.c.head, q.c.tail = nil, nil
	q.c.size = 0
}

// All returns a lazy iterator over the stored values in dequeue order.
func (q *PriorityQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := q.c.head; cur != nil; cur = cur.next {
			if !yield(cur.e.val) {
				return
			}
		}
	}
}

// Values returns the stored values in dequeue order as a flat slice.
func (q *PriorityQueue[T]) Values() []T {
	out := make([]T, 0, q.c.size)
	for cur := q.c.head; cur != nil; cur = cur.next {
		out = append(out, cur.e.val)
	}

	return out
}
