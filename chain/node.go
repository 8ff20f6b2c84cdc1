package chain

// Node is a single cell of a singly linked Chain: a value plus a forward
// reference. The forward link is owned by the chain that created the node
// and is never exposed for writing.
type Node[T comparable] struct {
	// Value is the element stored in this cell. Callers may overwrite it
	// in place (the bag's swap-removal relies on this); doing so never
	// affects the link structure.
	Value T

	next *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// DNode is a cell of a doubly linked DChain. The forward link is the owning
// direction; the backward link exists only for reverse traversal and O(1)
// unlinking, never for reachability decisions.
type DNode[T comparable] struct {
	// Value is the element stored in this cell.
	Value T

	next *DNode[T]
	prev *DNode[T]
}

// Next returns the following node, or nil at the tail.
func (n *DNode[T]) Next() *DNode[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *DNode[T]) Prev() *DNode[T] { return n.prev }
