// Package stack provides a LIFO container over a singly linked chain.
//
// What
//
//   - Push prepends at the head in O(1); Pop and Peek work on the head.
//   - Extend pushes another sequence through a temporary reversing stack,
//     so the source's relative order is preserved at the top: after
//     Extend over a,b,c the next three pops yield a,b,c.
//
// Errors
//
//   - ErrEmptyStack — Pop or Peek on an empty stack.
package stack

import (
	"errors"
	"iter"

	"github.com/astrokit/chains/chain"
)

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.New("stack: empty stack")

// Stack is a link-based LIFO. The zero value is NOT ready to use; call New.
type Stack[T comparable] struct {
	c *chain.Chain[T]
}

// New creates a Stack seeded bottom-to-top with the given values, so the
// last argument ends up on top. Complexity: O(len(values)).
func New[T comparable](values ...T) *Stack[T] {
	s := &Stack[T]{c: chain.New[T]()}
	for _, v := range values {
		s.Push(v)
	}

	return s
}

// NewFromSeq creates a Stack by pushing every element of seq in order.
func NewFromSeq[T comparable](seq iter.Seq[T]) *Stack[T] {
	s := &Stack[T]{c: chain.New[T]()}
	for v := range seq {
		s.Push(v)
	}

	return s
}

// Push places v on top of the stack. Complexity: O(1).
func (s *Stack[T]) Push(v T) { s.c.PushFront(v) }

// Pop removes and returns the top value.
// Returns ErrEmptyStack on an empty stack. Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.c.PopFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyStack
	}

	return v, nil
}

// Peek returns the top value without removing it.
// Returns ErrEmptyStack on an empty stack. Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	if s.c.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.c.Head().Value, nil
}

// Top is an alias for Peek.
func (s *Stack[T]) Top() (T, error) { return s.Peek() }

// Extend pushes every element of seq such that the sequence's relative
// order is preserved at the top: the next pops replay seq front-to-back.
// Implemented with a temporary reversing stack. Complexity: O(n) over seq.
func (s *Stack[T]) Extend(seq iter.Seq[T]) {
	tmp := &Stack[T]{c: chain.New[T]()}
	for v := range seq {
		tmp.Push(v)
	}
	for v := range tmp.All() {
		s.Push(v)
	}
}

// Len returns the number of stored elements. Complexity: O(1).
func (s *Stack[T]) Len() int { return s.c.Len() }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.c.IsEmpty() }

// Clear resets the stack to empty. Complexity: O(1).
func (s *Stack[T]) Clear() { s.c.Clear() }

// Contains reports whether v is stored anywhere in the stack.
func (s *Stack[T]) Contains(v T) bool { return s.c.Contains(v) }

// Equal reports whether both stacks hold equal values in the same
// top-to-bottom order. Complexity: O(n).
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if s == other {
		return true
	}
	if other == nil {
		return false
	}

	return s.c.Equal(other.c)
}

// Clone returns a new Stack with the same values in the same order.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{c: s.c.Clone()}
}

// All returns a lazy top-to-bottom iterator over the stored values.
func (s *Stack[T]) All() iter.Seq[T] { return s.c.All() }

// Values returns the stored values top-to-bottom as a flat slice.
func (s *Stack[T]) Values() []T { return s.c.Values() }

// String renders the stack top-to-bottom as "{a, b, c}".
func (s *Stack[T]) String() string { return s.c.String() }
