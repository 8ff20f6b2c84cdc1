package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tree operations.
var (
	// ErrBadArity is returned for a max-children cap below 1.
	ErrBadArity = errors.New("tree: max children must be at least 1")

	// ErrRootExists is returned by Add when the tree already has a root.
	ErrRootExists = errors.New("tree: tree already has a root")

	// ErrParentNotFound is returned by AddTo when the parent value is absent.
	ErrParentNotFound = errors.New("tree: parent not in tree")

	// ErrMaxChildren is returned when an insertion would exceed the cap.
	ErrMaxChildren = errors.New("tree: maximum number of children reached")

	// ErrNotFound is returned when a searched value is absent.
	ErrNotFound = errors.New("tree: value not in tree")

	// ErrChildIndex is returned by PopChild for an index outside the
	// child range.
	ErrChildIndex = errors.New("tree: child index out of range")
)

// Node is a single tree cell: a value, its owned children in insertion
// order, and a non-owning link back to its parent.
type Node[T comparable] struct {
	value    T
	parent   *Node[T]
	children []*Node[T]

	// maxChildren caps len(children); 0 means unbounded. Copied from the
	// owning tree so detached subtrees keep behaving the same way.
	maxChildren int
}

// Value returns the node's data.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the node's parent, or nil at the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// NumChildren returns the number of immediate children.
func (n *Node[T]) NumChildren() int { return len(n.children) }

// Child returns the i-th immediate child.
// Returns ErrChildIndex outside [0, NumChildren()).
func (n *Node[T]) Child(i int) (*Node[T], error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: %d with %d children", ErrChildIndex, i, len(n.children))
	}

	return n.children[i], nil
}

// Children returns the immediate children in insertion order. The slice is
// a copy; relinking still goes through the mutation methods.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)

	return out
}

// Depth returns the node's distance from the root, following the parent
// back-references. Complexity: O(depth).
func (n *Node[T]) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}

	return depth
}

// AddChild appends a new child holding v, subject to the arity cap.
// Returns ErrMaxChildren when the cap is already reached. Complexity: O(1).
func (n *Node[T]) AddChild(v T) (*Node[T], error) {
	if n.maxChildren > 0 && len(n.children) >= n.maxChildren {
		return nil, fmt.Errorf("%w: %d on node %v", ErrMaxChildren, n.maxChildren, n.value)
	}

	child := &Node[T]{value: v, parent: n, maxChildren: n.maxChildren}
	n.children = append(n.children, child)

	return child, nil
}

// PopChild detaches and returns the i-th child. Both directions of the
// linkage are cleared together: the child leaves the slice and its parent
// reference is nulled. Returns ErrChildIndex outside the child range.
func (n *Node[T]) PopChild(i int) (*Node[T], error) {
	child, err := n.Child(i)
	if err != nil {
		return nil, err
	}

	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil

	return child, nil
}

// RemoveChild detaches the first immediate child whose value equals v.
// Returns ErrNotFound when no immediate child matches.
func (n *Node[T]) RemoveChild(v T) error {
	for i, child := range n.children {
		if child.value == v {
			_, err := n.PopChild(i)
			return err
		}
	}

	return fmt.Errorf("%w: %v is not a child of %v", ErrNotFound, v, n.value)
}

// size counts the nodes of the subtree rooted at n, including n itself.
func (n *Node[T]) size() int {
	total := 1
	for _, child := range n.children {
		total += child.size()
	}

	return total
}

// String renders a leaf as its value and an inner node as "value: [...]".
func (n *Node[T]) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%v", n.value)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v: [", n.value)
	for i, child := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.String())
	}
	b.WriteByte(']')

	return b.String()
}
