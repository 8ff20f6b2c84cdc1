// Package chain: doubly linked DChain implementation.
//
// DChain threads a backward link through every node, buying O(1) removal at
// either end and O(1) unlinking of an arbitrary node once located. Backward
// links are never the owning direction: reachability is defined by next
// pointers alone.
package chain

import (
	"fmt"
	"iter"
	"strings"
)

// DChain is a generic doubly linked sequence with head, tail and size
// bookkeeping. The zero value is NOT ready to use; call NewD.
type DChain[T comparable] struct {
	head *DNode[T]
	tail *DNode[T]
	size int
}

// NewD creates a DChain seeded with values in the given order.
// Complexity: O(len(values)).
func NewD[T comparable](values ...T) *DChain[T] {
	c := &DChain[T]{}
	for _, v := range values {
		c.PushBack(v)
	}

	return c
}

// NewDFromSeq creates a DChain from any iterator, in iteration order.
// Complexity: O(n).
func NewDFromSeq[T comparable](seq iter.Seq[T]) *DChain[T] {
	c := &DChain[T]{}
	c.Extend(seq)

	return c
}

// Head returns the first node, or nil when the chain is empty.
func (c *DChain[T]) Head() *DNode[T] { return c.head }

// Tail returns the last node, or nil when the chain is empty.
func (c *DChain[T]) Tail() *DNode[T] { return c.tail }

// Len returns the number of stored elements. Complexity: O(1).
func (c *DChain[T]) Len() int { return c.size }

// IsEmpty reports whether the chain holds no elements.
func (c *DChain[T]) IsEmpty() bool { return c.size == 0 }

// PushBack appends v at the tail, threading the backward link.
// Complexity: O(1).
func (c *DChain[T]) PushBack(v T) {
	n := &DNode[T]{Value: v, prev: c.tail}
	if c.size == 0 {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

// PushFront prepends v at the head. Complexity: O(1).
func (c *DChain[T]) PushFront(v T) {
	n := &DNode[T]{Value: v, next: c.head}
	if c.size == 0 {
		c.tail = n
	} else {
		c.head.prev = n
	}
	c.head = n
	c.size++
}

// PopFront removes and returns the head value.
// Returns ErrEmptyChain on an empty chain. Complexity: O(1).
func (c *DChain[T]) PopFront() (T, error) {
	var zero T
	if c.size == 0 {
		return zero, ErrEmptyChain
	}

	v := c.head.Value
	c.head = c.head.next
	if c.head == nil {
		c.tail = nil
	} else {
		c.head.prev = nil
	}
	c.size--

	return v, nil
}

// PopBack removes and returns the tail value.
// Returns ErrEmptyChain on an empty chain. Complexity: O(1).
func (c *DChain[T]) PopBack() (T, error) {
	var zero T
	if c.size == 0 {
		return zero, ErrEmptyChain
	}

	v := c.tail.Value
	c.tail = c.tail.prev
	if c.tail == nil {
		c.head = nil
	} else {
		c.tail.next = nil
	}
	c.size--

	return v, nil
}

// InsertAfter links a new node holding v immediately after at, which must be
// a node of this chain. Both directions are fixed up before the method
// returns. Complexity: O(1).
func (c *DChain[T]) InsertAfter(at *DNode[T], v T) *DNode[T] {
	n := &DNode[T]{Value: v, next: at.next, prev: at}
	at.next = n
	if n.next == nil {
		c.tail = n
	} else {
		n.next.prev = n
	}
	c.size++

	return n
}

// Remove unlinks n, which must be a node of this chain, and returns its
// value. Complexity: O(1).
func (c *DChain[T]) Remove(n *DNode[T]) T {
	if n.prev == nil {
		c.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		c.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil
	c.size--

	return n.Value
}

// NodeAt returns the node at position i, walking from whichever end is
// closer, or nil when i is outside [0, Len()). Complexity: O(min(i, n-i)).
func (c *DChain[T]) NodeAt(i int) *DNode[T] {
	if i < 0 || i >= c.size {
		return nil
	}

	if i <= c.size/2 {
		cur := c.head
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}

	cur := c.tail
	for i = c.size - 1 - i; i > 0; i-- {
		cur = cur.prev
	}

	return cur
}

// Clear resets the chain to empty. Complexity: O(1).
func (c *DChain[T]) Clear() {
	c.head, c.tail = nil, nil
	c.size = 0
}

// Extend appends every element produced by seq, in iteration order.
// Complexity: O(n) over the sequence.
func (c *DChain[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		c.PushBack(v)
	}
}

// Contains reports whether v is stored in the chain. Complexity: O(n).
func (c *DChain[T]) Contains(v T) bool {
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.Value == v {
			return true
		}
	}

	return false
}

// Equal reports whether both chains have the same length and element-wise
// equal values in traversal order. Complexity: O(n).
func (c *DChain[T]) Equal(other *DChain[T]) bool {
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

// Clone returns a new DChain with freshly linked nodes holding the same
// values in the same order. Complexity: O(n).
func (c *DChain[T]) Clone() *DChain[T] {
	clone := &DChain[T]{}
	clone.Extend(c.All())

	return clone
}

// All returns a lazy head-to-tail iterator over the stored values.
func (c *DChain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := c.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Backward returns a lazy tail-to-head iterator over the stored values,
// following the backward links natively.
func (c *DChain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := c.tail; cur != nil; cur = cur.prev {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Values returns the stored values as a flat slice in traversal order.
// Complexity: O(n).
func (c *DChain[T]) Values() []T {
	out := make([]T, 0, c.size)
	for cur := c.head; cur != nil; cur = cur.next {
		out = append(out, cur.Value)
	}

	return out
}

// String renders the chain as "{a, b, c}".
func (c *DChain[T]) String() string {
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
