// Package bag provides an unordered multiset over a singly linked chain.
//
// What
//
//   - Add inserts at the head in O(1); internal order is LIFO but carries no
//     meaning — a bag only promises multiplicities.
//   - Count reports how many stored elements equal a value.
//   - Remove drops one arbitrary instance of a value. The found element's
//     value is swapped into the head cell and the head node is unlinked, so
//     removal costs O(1) after the O(n) search at the price of not
//     preserving relative order. This non-stable policy is intentional.
//   - Equal compares multiplicities, never order.
//
// Complexity (n = Len())
//
//   - Add: O(1); Count / Remove / Contains: O(n); Equal: O(n²)
//
// Errors
//
//   - ErrNotFound — Remove of a value the bag does not hold.
package bag

import (
	"errors"
	"fmt"
	"iter"

	"github.com/astrokit/chains/chain"
)

// ErrNotFound is returned when a removed value is absent from the bag.
var ErrNotFound = errors.New("bag: value not in bag")

// Bag is a link-based multiset. The zero value is NOT ready to use; call New.
type Bag[T comparable] struct {
	c *chain.Chain[T]
}

// New creates a Bag seeded with the given values. Complexity: O(len(values)).
func New[T comparable](values ...T) *Bag[T] {
	b := &Bag[T]{c: chain.New[T]()}
	for _, v := range values {
		b.Add(v)
	}

	return b
}

// Add inserts v at the head of the underlying chain. Complexity: O(1).
func (b *Bag[T]) Add(v T) { b.c.PushFront(v) }

// Len returns the number of stored elements (with multiplicity).
func (b *Bag[T]) Len() int { return b.c.Len() }

// IsEmpty reports whether the bag holds no elements.
func (b *Bag[T]) IsEmpty() bool { return b.c.IsEmpty() }

// Count returns the number of stored elements equal to v. Complexity: O(n).
func (b *Bag[T]) Count(v T) int {
	count := 0
	for cur := b.c.Head(); cur != nil; cur = cur.Next() {
		if cur.Value == v {
			count++
		}
	}

	return count
}

// Contains reports whether at least one instance of v is stored.
func (b *Bag[T]) Contains(v T) bool { return b.c.Contains(v) }

// Remove drops one arbitrary instance of v.
// The matched node's value is swapped into the head slot and the head node
// is dropped, so relative order of the survivors is NOT preserved.
// Returns ErrNotFound when v is absent; the bag is untouched in that case.
// Complexity: O(n) search + O(1) unlink.
func (b *Bag[T]) Remove(v T) error {
	cur := b.c.Head()
	for cur != nil && cur.Value != v {
		cur = cur.Next()
	}
	if cur == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}

	// Swap the match into the head cell, then unlink the head.
	head := b.c.Head()
	cur.Value, head.Value = head.Value, cur.Value
	_, _ = b.c.PopFront()

	return nil
}

// Clear resets the bag to empty. Complexity: O(1).
func (b *Bag[T]) Clear() { b.c.Clear() }

// Extend adds every element produced by seq. Complexity: O(n) over seq.
func (b *Bag[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		b.Add(v)
	}
}

// Equal reports whether both bags hold every distinct value with the same
// multiplicity, regardless of internal order. Complexity: O(n²).
func (b *Bag[T]) Equal(other *Bag[T]) bool {
	if b == other {
		return true
	}
	if other == nil || b.Len() != other.Len() {
		return false
	}

	for v := range b.c.All() {
		if b.Count(v) != other.Count(v) {
			return false
		}
	}

	return true
}

// Clone returns a new Bag with the same multiplicities. Complexity: O(n).
func (b *Bag[T]) Clone() *Bag[T] {
	clone := New[T]()
	clone.Extend(b.c.All())

	return clone
}

// All returns a lazy iterator over the stored values in internal order.
// The order carries no semantic meaning.
func (b *Bag[T]) All() iter.Seq[T] { return b.c.All() }

// Values returns the stored values as a flat slice in internal order.
func (b *Bag[T]) Values() []T { return b.c.Values() }

// String renders the bag as "{a, b, c}" in internal order.
func (b *Bag[T]) String() string { return b.c.String() }
