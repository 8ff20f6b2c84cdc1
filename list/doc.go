// Package list provides indexed linked lists: List (singly linked) and
// DList (doubly linked), both layered over the chain package.
//
// What
//
//   - Positional access with Python-style negative indices: -1 is the last
//     element, -Len() the first; anything outside the normalized range is
//     ErrIndexRange.
//   - Slice(start, stop[, step]) clamps its bounds and produces a new list
//     of the same kind; a step below 1 is ErrBadStep.
//   - Insert clamps the position into [0, Len()] and handles the empty,
//     front, back and middle cases explicitly — there is no random access,
//     so each case relinks a different neighborhood.
//   - Pop defaults to the final element; Remove drops the first occurrence
//     by value; RemoveAll sweeps every occurrence in a single traversal.
//   - Reverse rebuilds in reverse traversal order; Sort integrates the
//     sorting package's named strategies.
//
// List vs DList
//
//	List walks from the head for every positional operation: O(i) access,
//	and removal needs the predecessor. DList locates a node from whichever
//	end is closer and then relinks in O(1), and its Backward iterator is
//	native rather than rebuilt.
//
// Errors
//
//   - ErrIndexRange — access/pop outside [0, Len()) after normalization.
//   - ErrNotFound   — Remove/Index of an absent value.
//   - ErrBadStep    — Slice with a step below 1.
package list
