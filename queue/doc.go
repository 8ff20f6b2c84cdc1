// Package queue provides FIFO and priority queues over a singly linked chain.
//
// What
//
//   - Queue[T]: Enqueue appends at the tail in O(1), Dequeue and Peek work
//     on the head. Strict arrival ordering.
//   - PriorityQueue[T]: Enqueue(v, priority) inserts by linear scan so the
//     chain stays sorted by ascending priority — lower integer means served
//     first. Ties land after existing entries of the same priority, so
//     ordering is stable (FIFO within a priority class). Dequeue stays O(1)
//     because the head is always the best entry.
//
// Complexity (n = Len())
//
//   - Queue: Enqueue / Dequeue / Peek: O(1)
//   - PriorityQueue: Enqueue: O(n); Dequeue / Peek: O(1)
//
// Errors
//
//   - ErrEmptyQueue — Dequeue or Peek on an empty queue of either kind.
package queue
