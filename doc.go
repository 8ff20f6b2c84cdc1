// Package chains is an in-memory playground of classic link-based
// containers — from a shared linked-chain core to stacks, queues,
// priority queues, indexed lists and a bounded-arity n-ary tree.
//
// 🚀 What is chains?
//
//	A small, generic library that brings together:
//		• Core primitives: singly & doubly linked chains with exported nodes
//		• Bag: an unordered multiset with O(1) insertion
//		• Stack & Queue: LIFO/FIFO fronts over the same chain core
//		• PriorityQueue: stable ascending-priority ordering
//		• List & DList: indexed access, slicing, reversal, named-sort dispatch
//		• Tree: parent-linked n-ary tree with traversals and a row Builder
//		• Sorting: selection/insertion/bubble/merge/quick/radix + searches
//
// ✨ Why choose chains?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable guarantees – documented complexity on every operation
//   - Explicit failures – sentinel errors, no panics on bad input
//   - Generic – one implementation for any comparable element type
//
// Under the hood, everything is organized per structure:
//
//	chain/   — fundamental Node, Chain and DChain types
//	bag/     — multiset atop a chain
//	stack/   — LIFO atop a chain
//	queue/   — FIFO and priority queues atop a chain
//	list/    — indexed singly/doubly linked lists + sort integration
//	sorting/ — named sorting strategies and search algorithms
//	tree/    — bounded-arity n-ary tree, traversals, builder
//
// Quick ASCII example:
//
//	head → [a] → [b] → [c] → ∅
//	              ↑ tail after PopBack on a DChain
//
// Dive into each package's doc.go for contracts, complexity tables and
// worked examples.
//
//	go get github.com/astrokit/chains
package chains
