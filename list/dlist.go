// Package list: doubly linked DList implementation.
//
// DList mirrors the List contract but relinks in O(1) once a position's
// node is located: the backward links make the predecessor reachable
// without a separate walk, and NodeAt starts from whichever end is closer.
package list

import (
	"iter"

	"github.com/astrokit/chains/chain"
)

// DList is a doubly linked list with indexed access. The zero value is NOT
// ready to use; call NewD.
type DList[T comparable] struct {
	c *chain.DChain[T]
}

// NewD creates a DList seeded with values in the given order.
// Complexity: O(len(values)).
func NewD[T comparable](values ...T) *DList[T] {
	return &DList[T]{c: chain.NewD(values...)}
}

// NewDFromSeq creates a DList from any iterator, in iteration order.
func NewDFromSeq[T comparable](seq iter.Seq[T]) *DList[T] {
	return &DList[T]{c: chain.NewDFromSeq(seq)}
}

// Append adds v at the end of the list. Complexity: O(1).
func (l *DList[T]) Append(v T) { l.c.PushBack(v) }

// Add is an alias for Append.
func (l *DList[T]) Add(v T) { l.Append(v) }

// Prepend adds v at the start of the list. Complexity: O(1).
func (l *DList[T]) Prepend(v T) { l.c.PushFront(v) }

// Get returns the element at position i, with the same negative-index rules
// as List.Get. Complexity: O(min(i, n-i)).
func (l *DList[T]) Get(i int) (T, error) {
	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		var zero T
		return zero, err
	}

	return l.c.NodeAt(idx).Value, nil
}

// Set replaces the element at position i with v. Complexity: O(min(i, n-i)).
func (l *DList[T]) Set(i int, v T) error {
	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		return err
	}
	l.c.NodeAt(idx).Value = v

	return nil
}

// Replace is an alias for Set.
func (l *DList[T]) Replace(i int, v T) error { return l.Set(i, v) }

// Slice returns a new DList holding the elements from start (inclusive) to
// stop (exclusive), visiting every step-th element, with Python-style
// clamping. Complexity: O(stop).
func (l *DList[T]) Slice(start, stop int, step ...int) (*DList[T], error) {
	st := 1
	if len(step) > 0 {
		st = step[0]
	}
	if st < 1 {
		return nil, ErrBadStep
	}

	size := l.c.Len()
	start, stop = clampSlice(start, size), clampSlice(stop, size)

	out := NewD[T]()
	if start >= stop {
		return out, nil
	}

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

// Insert places v at position i, clamping i into [0, Len()]. Boundary
// insertions are O(1); a middle insertion costs only the node lookup.
func (l *DList[T]) Insert(i int, v T) {
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
// final element. Unlinking is O(1) once the node is located, so popping
// either end never walks the list. Complexity: O(min(i, n-i)).
func (l *DList[T]) Pop(index ...int) (T, error) {
	var zero T
	i := l.c.Len() - 1
	if len(index) > 0 {
		i = index[0]
	}

	idx, err := normIndex(i, l.c.Len())
	if err != nil {
		return zero, err
	}

	return l.c.Remove(l.c.NodeAt(idx)), nil
}

// Index returns the position of the first element equal to v.
// Returns ErrNotFound when absent. Complexity: O(n).
func (l *DList[T]) Index(v T) (int, error) {
	i := 0
	for cur := l.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			return i, nil
		}
		i++
	}

	return -1, ErrNotFound
}

// Remove drops the first element equal to v.
// Returns ErrNotFound when absent. Complexity: O(n).
func (l *DList[T]) Remove(v T) error {
	for cur := l.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			l.c.Remove(cur)
			return nil
		}
	}

	return ErrNotFound
}

// RemoveAll drops every element equal to v in one traversal.
// Complexity: O(n).
func (l *DList[T]) RemoveAll(v T) {
	cur := l.c.Head()
	for cur != nil {
		next := cur.Next()
		if cur.Value == v {
			l.c.Remove(cur)
		}
		cur = next
	}
}

// Count returns the number of elements equal to v. Complexity: O(n).
func (l *DList[T]) Count(v T) int {
	count := 0
	for cur := l.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			count++
		}
	}

	return count
}

// Reverse rebuilds the list in reverse traversal order, walking the
// backward links natively. Complexity: O(n).
func (l *DList[T]) Reverse() {
	reversed := chain.NewDFromSeq(l.c.Backward())
	l.c = reversed
}

// Len returns the number of stored elements. Complexity: O(1).
func (l *DList[T]) Len() int { return l.c.Len() }

// IsEmpty reports whether the list holds no elements.
func (l *DList[T]) IsEmpty() bool { return l.c.IsEmpty() }

// Clear resets the list to empty. Complexity: O(1).
func (l *DList[T]) Clear() { l.c.Clear() }

// Extend appends every element produced by seq, in iteration order.
func (l *DList[T]) Extend(seq iter.Seq[T]) { l.c.Extend(seq) }

// Contains reports whether v is stored in the list. Complexity: O(n).
func (l *DList[T]) Contains(v T) bool { return l.c.Contains(v) }

// Equal reports whether both lists hold equal values in the same order.
func (l *DList[T]) Equal(other *DList[T]) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}

	return l.c.Equal(other.c)
}

// Clone returns a new DList with the same values in the same order.
func (l *DList[T]) Clone() *DList[T] {
	return &DList[T]{c: l.c.Clone()}
}

// All returns a lazy head-to-tail iterator over the stored values.
func (l *DList[T]) All() iter.Seq[T] { return l.c.All() }

// Backward returns a lazy tail-to-head iterator, following the backward
// links natively rather than rebuilding.
func (l *DList[T]) Backward() iter.Seq[T] { return l.c.Backward() }

// Values returns the stored values as a flat slice. Complexity: O(n).
func (l *DList[T]) Values() []T { return l.c.Values() }

// String renders the list as "[a, b, c]".
func (l *DList[T]) String() string {
	s := l.c.String()

	return "[" + s[1:len(s)-1] + "]"
}
