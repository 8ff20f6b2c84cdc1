// Package chain: singly linked Chain implementation.
//
// This file provides the Chain type and its O(1) end operations plus the
// positional primitives (NodeAt, InsertAfter, RemoveAfter) that the list
// package builds its indexed API on. Head/tail/size are updated together in
// every mutator, so the package invariant holds between any two calls.
package chain

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyChain is returned when a value is popped from an empty chain.
var ErrEmptyChain = errors.New("chain: empty chain")

// Chain is a generic singly linked sequence with head, tail and size
// bookkeeping. The zero value is NOT ready to use; call New.
type Chain[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New creates a Chain seeded with values in the given order.
// Complexity: O(len(values)).
func New[T comparable](values ...T) *Chain[T] {
	c := &Chain[T]{}
	for _, v := range values {
		c.PushBack(v)
	}

	return c
}

// NewFromSeq creates a Chain from any iterator, in iteration order.
// Complexity: O(n).
func NewFromSeq[T comparable](seq iter.Seq[T]) *Chain[T] {
	c := &Chain[T]{}
	c.Extend(seq)

	return c
}

// Head returns the first node, or nil when the chain is empty.
func (c *Chain[T]) Head() *Node[T] { return c.head }

// Tail returns the last node, or nil when the chain is empty.
func (c *Chain[T]) Tail() *Node[T] { return c.tail }

// Len returns the number of stored elements. Complexity: O(1).
func (c *Chain[T]) Len() int { return c.size }

// IsEmpty reports whether the chain holds no elements.
func (c *Chain[T]) IsEmpty() bool { return c.size == 0 }

// PushBack appends v at the tail; the first element becomes both head and
// tail. Complexity: O(1).
func (c *Chain[T]) PushBack(v T) {
	n := &Node[T]{Value: v}
	if c.size == 0 {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

// PushFront prepends v at the head. Complexity: O(1).
func (c *Chain[T]) PushFront(v T) {
	n := &Node[T]{Value: v, next: c.head}
	c.head = n
	if c.size == 0 {
		c.tail = n
	}
	c.size++
}

// PopFront removes and returns the head value.
// Returns ErrEmptyChain on an empty chain. Complexity: O(1).
func (c *Chain[T]) PopFront() (T, error) {
	var zero T
	if c.size == 0 {
		return zero, ErrEmptyChain
	}

	v := c.head.Value
	c.head = c.head.next
	if c.size == 1 {
		c.tail = nil
	}
	c.size--

	return v, nil
}

// InsertAfter links a new node holding v immediately after at, which must be
// a node of this chain. Tail and size are adjusted. Complexity: O(1).
func (c *Chain[T]) InsertAfter(at *Node[T], v T) *Node[T] {
	n := &Node[T]{Value: v, next: at.next}
	at.next = n
	if n.next == nil {
		c.tail = n
	}
	c.size++

	return n
}

// RemoveAfter unlinks and returns the value of the node following prev,
// which must be a node of this chain. The second result is false when prev
// is already the tail. Complexity: O(1).
func (c *Chain[T]) RemoveAfter(prev *Node[T]) (T, bool) {
	var zero T
	target := prev.next
	if target == nil {
		return zero, false
	}

	prev.next = target.next
	if target == c.tail {
		c.tail = prev
	}
	c.size--

	return target.Value, true
}

// NodeAt returns the node at position i by walking from the head,
// or nil when i is outside [0, Len()). Complexity: O(i).
func (c *Chain[T]) NodeAt(i int) *Node[T] {
	if i < 0 || i >= c.size {
		return nil
	}

	cur := c.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}

// Clear resets the chain to empty. Unlinked nodes become unreachable and are
// reclaimed by the collector. Complexity: O(1).
func (c *Chain[T]) Clear() {
	c.head, c.tail = nil, nil
	c.size = 0
}

// Extend appends every element produced by seq, in iteration order.
// Complexity: O(n) over the sequence.
func (c *Chain[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		c.PushBack(v)
	}
}

// Contains reports whether v is stored in the chain. Complexity: O(n).
func (c *Chain[T]) Contains(v T) bool {
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.Value == v {
			return true
		}
	}

	return false
}

// Equal reports whether both chains have the same length and element-wise
// equal values in traversal order. Complexity: O(n).
func (c *Chain[T]) Equal(other *Chain[T]) bool {
	if c == other {
		return true
	}
	if other == nil || c.size != other.size {
		return false
	}

	a, b := c.head, other.head
	for a != nil {
		if a.Value != b.Value {
			return false
		}
		a, b = a.next, b.next
	}

	return true
}

// Clone returns a new Chain with freshly linked nodes holding the same
// values in the same order (values are copied shallowly). Complexity: O(n).
func (c *Chain[T]) Clone() *Chain[T] {
	clone := &Chain[T]{}
	clone.Extend(c.All())

	return clone
}

// All returns a lazy head-to-tail iterator over the stored values. Each call
// starts a fresh traversal.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := c.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Values returns the stored values as a flat slice in traversal order.
// Complexity: O(n).
func (c *Chain[T]) Values() []T {
	out := make([]T, 0, c.size)
	for cur := c.head; cur != nil; cur = cur.next {
		out = append(out, cur.Value)
	}

	return out
}

// String renders the chain as "{a, b, c}".
func (c *Chain[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for cur := c.head; cur != nil; cur = cur.next {
		if cur != c.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", cur.Value)
	}
	b.WriteByte('}')

	return b.String()
}
