package tree

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Build diagnostics.
var (
	// ErrEmptySource is returned by Build for an empty row set.
	ErrEmptySource = errors.New("tree: no rows to build from")

	// ErrMissingRoot is returned when no row has a nil parent.
	ErrMissingRoot = errors.New("tree: no root row")

	// ErrMultipleRoots is returned when more than one row has a nil parent.
	ErrMultipleRoots = errors.New("tree: multiple root rows")

	// ErrDanglingRows is returned when some rows never attach: their
	// parents are absent from the row set or sit behind a cycle.
	ErrDanglingRows = errors.New("tree: dangling rows")
)

// Row is one (value, parent) record for Build. A nil Parent marks the
// root row.
type Row[T comparable] struct {
	Value  T
	Parent *T
}

// RootRow builds the root record.
func RootRow[T comparable](v T) Row[T] {
	return Row[T]{Value: v}
}

// ChildRow builds a child record attached under parent.
func ChildRow[T comparable](v, parent T) Row[T] {
	return Row[T]{Value: v, Parent: &parent}
}

// Build assembles a Tree from unordered rows. Rows may arrive in any
// order: children are attached in repeated passes, each pass picking up
// exactly the rows whose parents were present when the pass started. A row
// never attaches in the same pass as its parent, so two rows deferred to
// the same pass keep their relative row order as siblings.
//
// Returns ErrEmptySource, ErrMissingRoot, ErrMultipleRoots, or
// ErrDanglingRows when the row set cannot describe exactly one tree, and
// passes through ErrMaxChildren from the arity cap.
//
// Complexity: O(n·d) row passes over depth d.
func Build[T comparable](rows []Row[T], opts ...Option[T]) (*Tree[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	t, err := New(opts...)
	if err != nil {
		return nil, err
	}

	pending := make([]Row[T], 0, len(rows))
	for _, row := range rows {
		if row.Parent == nil {
			if t.root != nil {
				return nil, fmt.Errorf("%w: %v and %v", ErrMultipleRoots, t.root.value, row.Value)
			}
			if err = t.Add(row.Value); err != nil {
				return nil, err
			}

			continue
		}
		pending = append(pending, row)
	}
	if t.root == nil {
		return nil, ErrMissingRoot
	}

	// present snapshots the values attached before the current pass; it is
	// only refreshed between passes, so a parent attached mid-pass cannot
	// pull its children forward past earlier-deferred rows.
	present := map[T]struct{}{t.root.value: {}}
	for pass := 1; len(pending) > 0; pass++ {
		remnant := pending[:0]
		attached := make([]T, 0, len(pending))
		for _, row := range pending {
			if _, ok := present[*row.Parent]; !ok {
				remnant = append(remnant, row)
				continue
			}
			if err = t.AddTo(*row.Parent, row.Value); err != nil {
				return nil, err
			}
			attached = append(attached, row.Value)
		}

		if len(remnant) == len(pending) {
			return nil, fmt.Errorf("%w: %s", ErrDanglingRows, spew.Sprintf("%v", remnant))
		}
		for _, v := range attached {
			present[v] = struct{}{}
		}
		fLogger.Debugf("build pass %d attached %d rows, %d pending", pass, len(attached), len(remnant))
		pending = remnant
	}

	return t, nil
}
