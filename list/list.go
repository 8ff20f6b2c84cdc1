// Package list: singly linked List implementation.
//
// Every positional operation normalizes and bounds-checks its index before
// touching any link, so a failed call never leaves a partial mutation.
package list

import (
	"errors"
	"fmt"
	"iter"

	"github.com/astrokit/chains/chain"
)

// Sentinel errors shared by List and DList.
var (
	// ErrIndexRange is returned for an index outside the valid range after
	// negative-index normalization.
	ErrIndexRange = errors.New("list: index out of range")

	// ErrNotFound is returned when a value looked up by equality is absent.
	ErrNotFound = errors.New("list: value not in list")

	// ErrBadStep is returned by Slice for a step below 1.
	ErrBadStep = errors.New("list: slice step must be positive")
)

// List is a singly linked list with indexed access. The zero value is NOT
// ready to use; call New.
type List[T comparable] struct {
	c *chain.Chain[T]
}

// New creates a List seeded with values in the given order.
// Complexity: O(len(values)).
func New[T comparable](values ...T) *List[T] {
	return &List[T]{c: chain.New(values...)}
}

// NewFromSeq creates a List from any iterator, in iteration order.
func NewFromSeq[T comparable](seq iter.Seq[T]) *List[T] {
	return &List[T]{c: chain.NewFromSeq(seq)}
}

// normIndex maps a possibly negative index onto [0, size) or fails with
// ErrIndexRange.
func normIndex(i, size int) (int, error) {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, fmt.Errorf("%w: %d with length %d", ErrIndexRange, i, size)
	}

	return i, nil
}

// clampSlice normalizes a slice bound the Python way: negative bounds count
// from the end, then everything is clamped into [0, size].
func clampSlice(i, size int) int {
	if i < 0 {
		i += size
	}
	if i < 0 {
		return 0
	}
	if i > size {
		return size
	}

	return i
}

// Append adds v at the end of the list. Complexity: O(1).
func (l *List[T]) Append(v T) { l.c.PushBack(v) }

// Add is an alias for Append.
func (l *List[T]) Add(v T) { l.Append(v) }

// Prepend adds v at the start of the list. Complexity: O(1).
func (l *List[T]) Prepend(v T) { l.c.PushFront(v) }

// Get returns the element at position i. Negative indices count from the
// end (-1 is the last element). Returns ErrIndexRange outside the
// normalized bounds. Complexity: O(i).
func (l *List[T]) Get(i int) (T, error) {
	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		var zero T
		return zero, err
	}

	return l.c.NodeAt(idx).Value, nil
}

// Set replaces the element at position i with v, with the same index rules
// as Get. Complexity: O(i).
func (l *List[T]) Set(i int, v T) error {
	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		return err
	}
	l.c.NodeAt(idx).Value = v

	return nil
}

// Replace is an alias for Set.
func (l *List[T]) Replace(i int, v T) error { return l.Set(i, v) }

// Slice returns a new List holding the elements from start (inclusive) to
// stop (exclusive), visiting every step-th element. Bounds are normalized
// and clamped like Python slices; step defaults to 1 and must be positive.
// Complexity: O(stop).
func (l *List[T]) Slice(start, stop int, step ...int) (*List[T], error) {
	st := 1
	if len(step) > 0 {
		st = step[0]
	}
	if st < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadStep, st)
	}

	size := l.c.Len()
	start, stop = clampSlice(start, size), clampSlice(stop, size)

	out := New[T]()
	if start >= stop {
		return out, nil
	}

	// One pass: count positions from start, keeping every step-th value.
	i := 0
	for v := range l.c.All() {
		if i >= stop {
			break
		}
		if i >= start && (i-start)%st == 0 {
			out.Append(v)
		}
		i++
	}

	return out, nil
}

// Insert places v at position i, clamping i into [0, Len()]. The empty,
// front, back and middle cases relink different neighborhoods because the
// structure has no random access. Complexity: O(i).
func (l *List[T]) Insert(i int, v T) {
	size := l.c.Len()
	if i < 0 {
		i = 0
	} else if i > size {
		i = size
	}

	switch {
	case size == 0, i == 0:
		l.c.PushFront(v)
	case i == size:
		l.c.PushBack(v)
	default:
		l.c.InsertAfter(l.c.NodeAt(i-1), v)
	}
}

// Pop removes and returns the element at position index, defaulting to the
// final element when no index is given. Negative indices count from the
// end. Returns ErrIndexRange outside the normalized bounds.
// Complexity: O(i).
func (l *List[T]) Pop(index ...int) (T, error) {
	var zero T
	i := l.c.Len() - 1
	if len(index) > 0 {
		i = index[0]
	}

	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		return zero, err
	}

	if idx == 0 {
		return l.c.PopFront()
	}

	v, _ := l.c.RemoveAfter(l.c.NodeAt(idx - 1))

	return v, nil
}

// Index returns the position of the first element equal to v.
// Returns ErrNotFound when absent. Complexity: O(n).
func (l *List[T]) Index(v T) (int, error) {
	i := 0
	for cur := l.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			return i, nil
		}
		i++
	}

	return -1, fmt.Errorf("%w: %v", ErrNotFound, v)
}

// Remove drops the first element equal to v.
// Returns ErrNotFound when absent. Complexity: O(n).
func (l *List[T]) Remove(v T) error {
	i, err := l.Index(v)
	if err != nil {
		return err
	}
	_, err = l.Pop(i)

	return err
}

// RemoveAll drops every element equal to v in one traversal.
// Complexity: O(n).
func (l *List[T]) RemoveAll(v T) {
	// Track the predecessor so unlinking never needs a second walk.
	var prev *chain.Node[T]
	cur := l.c.Head()
	for cur != nil {
		next := cur.Next()
		if cur.Value == v {
			if prev == nil {
				_, _ = l.c.PopFront()
			} else {
				_, _ = l.c.RemoveAfter(prev)
			}
		} else {
			prev = cur
		}
		cur = next
	}
}

// Count returns the number of elements equal to v. Complexity: O(n).
func (l *List[T]) Count(v T) int {
	count := 0
	for cur := l.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			count++
		}
	}

	return count
}

// Reverse rebuilds the list in reverse traversal order. Complexity: O(n).
func (l *List[T]) Reverse() {
	reversed := chain.New[T]()
	for v := range l.c.All() {
		reversed.PushFront(v)
	}
	l.c = reversed
}

// Len returns the number of stored elements. Complexity: O(1).
func (l *List[T]) Len() int { return l.c.Len() }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.c.IsEmpty() }

// Clear resets the list to empty. Complexity: O(1).
func (l *List[T]) Clear() { l.c.Clear() }

// Extend appends every element produced by seq, in iteration order.
func (l *List[T]) Extend(seq iter.Seq[T]) { l.c.Extend(seq) }

// Contains reports whether v is stored in the list. Complexity: O(n).
func (l *List[T]) Contains(v T) bool { return l.c.Contains(v) }

// Equal reports whether both lists hold equal values in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}

	return l.c.Equal(other.c)
}

// Clone returns a new List with the same values in the same order.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{c: l.c.Clone()}
}

// All returns a lazy head-to-tail iterator over the stored values.
func (l *List[T]) All() iter.Seq[T] { return l.c.All() }

// Values returns the stored values as a flat slice for interop with
// slice-based APIs. Complexity: O(n).
func (l *List[T]) Values() []T { return l.c.Values() }

// String renders the list as "[a, b, c]".
func (l *List[T]) String() string {
	s := l.c.String()

	return "[" + s[1:len(s)-1] + "]"
}
