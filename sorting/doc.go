// Package sorting implements the module's named sorting strategies and
// search algorithms over flat slices.
//
// # Named sorting
//
// Sort accepts a closed Algorithm enumeration — Default, Selection,
// Insertion, Bubble, Merge, Quick, Radix — and returns a freshly allocated
// sorted slice, leaving its input untouched. Parse maps the historical
// case-insensitive spellings ("merge", "mergesort", "merge sort", ...) onto
// the enum, rejecting anything else with ErrUnknownAlgorithm so a bad name
// fails once, at parse time, not in the middle of a sort.
//
// Steps for a name-dispatched sort:
//  1. Parse the name (or pass an Algorithm constant directly).
//  2. Sort copies the input and dispatches on the constant.
//  3. Radix additionally requires non-negative integer elements; the
//     element type is checked at the call and rejected with
//     ErrRadixInteger/ErrNegative.
//
// Complexity:
//
//	Selection / Insertion / Bubble: O(n²)
//	Merge:                          O(n·log n)
//	Quick:                          O(n·log n) average, O(n²) worst
//	Radix:                          O(w·n) for w digits in the chosen base
//	Default:                        the platform comparison sort
//
// # Searching
//
// LinearSearch scans any comparable slice. BinarySearch and
// InterpolationSearch require sorted input and fail with ErrUnsorted
// otherwise; all three return -1 when the target is absent.
//
// Errors
//
//   - ErrUnknownAlgorithm — Parse of an unrecognized name.
//   - ErrRadixInteger     — Radix dispatch over a non-integer element type.
//   - ErrNegative         — Radix over negative elements.
//   - ErrBadBase          — WithBase below 2.
//   - ErrUnsorted         — ordered search over unsorted data.
package sorting
