// Package chain provides the fundamental linked-sequence types that every
// container in this module is built on: Chain (singly linked) and DChain
// (doubly linked), with exported node types for structure-aware callers.
//
// What
//
//   - Node[T] / DNode[T]: exported cells holding a Value plus forward (and,
//     for DNode, backward) links. Links are read-only outside this package;
//     all relinking goes through Chain/DChain methods so the head/tail/size
//     invariant can never be observed half-updated.
//   - Chain[T]: head, tail and size bookkeeping over Node cells. O(1)
//     PushBack/PushFront/PopFront, positional access via NodeAt, and
//     structure-preserving InsertAfter/RemoveAfter for higher-level
//     containers (bag, stack, queue, list).
//   - DChain[T]: the doubly linked variant. Adds O(1) PopBack, O(1) Remove
//     of an arbitrary node, and native tail-to-head iteration.
//
// Why
//
//   - One audited implementation of pointer bookkeeping instead of five:
//     every container in this module delegates its linking here.
//   - Exported nodes keep O(1) splicing available without giving callers a
//     way to corrupt size or tail tracking.
//
// Invariant
//
//	Len() == 0  ⇔  Head() == nil && Tail() == nil.
//	Otherwise Tail() is reachable from Head() in exactly Len()-1 Next steps.
//
// Iteration
//
//	All() returns a lazy iter.Seq[T]; each call starts a fresh traversal in
//	head-to-tail order. DChain additionally offers Backward(). Mutating the
//	chain during iteration is not supported.
//
// Complexity (n = Len())
//
//   - PushBack / PushFront / PopFront / Clear: O(1)
//   - PopBack (DChain only): O(1)
//   - NodeAt(i): O(i); Contains / Equal / Clone / Values: O(n)
//
// Errors
//
//   - ErrEmptyChain — PopFront/PopBack on an empty chain.
package chain
