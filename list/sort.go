// Package list: sorting integration.
//
// Sorting is exposed as free generic functions rather than methods because
// it needs an ordering on the element type, which the containers themselves
// never require. Both List and DList satisfy the sortable interface.
package list

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/astrokit/chains/sorting"
)

// sortable is the surface Sort needs from either list kind.
type sortable[T comparable] interface {
	Values() []T
	Clear()
	Extend(iter.Seq[T])
}

// Sort rebuilds l in ascending order using the given strategy from the
// sorting package; sorting.Default selects the platform comparison sort.
// On error (unknown algorithm, radix constraint violations) the list is
// left untouched. Complexity: the chosen strategy's, plus O(n) rebuild.
func Sort[T constraints.Ordered](l sortable[T], alg sorting.Algorithm, opts ...sorting.Option) error {
	vals, err := sorting.Sort(l.Values(), alg, opts...)
	if err != nil {
		return err
	}

	l.Clear()
	l.Extend(slices.Values(vals))

	return nil
}

// SortByName resolves a case-insensitive algorithm name (see sorting.Parse)
// and sorts with it. An unrecognized name fails with
// sorting.ErrUnknownAlgorithm before any mutation.
func SortByName[T constraints.Ordered](l sortable[T], name string, opts ...sorting.Option) error {
	alg, err := sorting.Parse(name)
	if err != nil {
		return err
	}

	return Sort(l, alg, opts...)
}
