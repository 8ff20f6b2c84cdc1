// Package tree provides a bounded-arity, parent-linked n-ary tree.
//
// What
//
//   - Node[T]: a value, an ordered slice of owned children, and a
//     non-owning back-reference to its parent. The parent link exists for
//     depth computation and removal bookkeeping only; reachability is
//     always defined by the child links, so the two directions can never
//     disagree about ownership.
//   - Tree[T]: a root pointer plus a shared max-children cap applied to
//     every node created within it. WithMaxChildren(2) makes it binary.
//   - Add creates the root; AddTo locates a parent by value equality
//     (depth-first from the root) and appends a child, failing with
//     ErrMaxChildren once the cap is reached.
//   - Remove detaches the first node whose value matches, nulling both
//     directions of the parent/child linkage in one step; removing the
//     root empties the whole tree.
//   - PreOrder, PostOrder and LevelOrder flatten the tree; Height is -1
//     for an empty tree and 0 for a single leaf.
//   - Build assembles a tree from unordered (value, parent) rows,
//     diagnosing missing/multiple roots and dangling rows.
//
// Logging
//
//	The package logs build and removal progress at Debug level through a
//	logrus.FieldLogger; install your own with SetLogger.
//
// Complexity (n = node count)
//
//   - Add: O(1); AddTo / Find / Remove: O(n) search + O(arity) relink
//   - Traversals / Height: O(n)
//
// Errors
//
//   - ErrBadArity        — WithMaxChildren below 1.
//   - ErrRootExists      — Add on a tree that already has a root.
//   - ErrParentNotFound  — AddTo under an absent parent value.
//   - ErrMaxChildren     — AddTo past the arity cap.
//   - ErrNotFound        — Remove of an absent value.
//   - ErrChildIndex      — PopChild outside the child range.
//   - ErrEmptySource / ErrMissingRoot / ErrMultipleRoots / ErrDanglingRows
//     — Build diagnostics.
package tree
