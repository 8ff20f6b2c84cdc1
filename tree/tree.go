package tree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// fLogger is the package logger. Build and Remove report progress at
// Debug level; everything else is silent.
var fLogger logrus.FieldLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)

	return l
}()

// SetLogger installs a custom logger for the package. A nil logger is
// ignored.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		fLogger = l
	}
}

// Tree is a rooted n-ary tree with an optional shared arity cap. The zero
// cap means unbounded; WithMaxChildren(2) makes the tree binary.
type Tree[T comparable] struct {
	root        *Node[T]
	maxChildren int
	size        int
}

// Option configures a Tree under construction.
type Option[T comparable] func(*Tree[T]) error

// WithMaxChildren caps the number of children per node.
// Returns ErrBadArity for a cap below 1.
func WithMaxChildren[T comparable](n int) Option[T] {
	return func(t *Tree[T]) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrBadArity, n)
		}
		t.maxChildren = n

		return nil
	}
}

// WithRoot seeds the tree with a root value.
func WithRoot[T comparable](v T) Option[T] {
	return func(t *Tree[T]) error {
		return t.Add(v)
	}
}

// New constructs an empty Tree, then applies opts in order.
func New[T comparable](opts ...Option[T]) (*Tree[T], error) {
	t := &Tree[T]{}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Root returns the root node, or nil on an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of nodes in the tree. Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree has no root.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// IsBinary reports whether the arity cap is exactly 2.
func (t *Tree[T]) IsBinary() bool { return t.maxChildren == 2 }

// MaxChildren returns the arity cap, 0 meaning unbounded.
func (t *Tree[T]) MaxChildren() int { return t.maxChildren }

// Add creates the root node holding v.
// Returns ErrRootExists when the tree already has one. Complexity: O(1).
func (t *Tree[T]) Add(v T) error {
	if t.root != nil {
		return fmt.Errorf("%w: root is %v", ErrRootExists, t.root.value)
	}

	t.root = &Node[T]{value: v, maxChildren: t.maxChildren}
	t.size = 1

	return nil
}

// AddTo appends a child holding v under the first node whose value equals
// parent. Returns ErrParentNotFound when parent is absent and
// ErrMaxChildren when the parent is already at the arity cap.
// Complexity: O(n) search + O(1) append.
func (t *Tree[T]) AddTo(parent, v T) error {
	p := t.Find(parent)
	if p == nil {
		return fmt.Errorf("%w: %v", ErrParentNotFound, parent)
	}

	if _, err := p.AddChild(v); err != nil {
		return err
	}
	t.size++

	return nil
}

// Find returns the first node (pre-order) whose value equals v, or nil.
// Complexity: O(n).
func (t *Tree[T]) Find(v T) *Node[T] {
	return findIn(t.root, v)
}

func findIn[T comparable](n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}
	if n.value == v {
		return n
	}
	for _, child := range n.children {
		if hit := findIn(child, v); hit != nil {
			return hit
		}
	}

	return nil
}

// Contains reports whether v occurs anywhere in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Remove detaches the first node whose value equals v, together with its
// whole subtree. Removing the root empties the tree. Returns ErrNotFound
// when v is absent. Complexity: O(n).
func (t *Tree[T]) Remove(v T) error {
	target := t.Find(v)
	if target == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}

	removed := target.size()
	if target == t.root {
		t.root = nil
		t.size = 0
		fLogger.Debugf("removed root %v, tree is now empty", v)

		return nil
	}

	parent := target.parent
	for i, child := range parent.children {
		if child == target {
			if _, err := parent.PopChild(i); err != nil {
				return err
			}
			break
		}
	}
	t.size -= removed
	fLogger.Debugf("removed subtree at %v (%d nodes)", v, removed)

	return nil
}

// PreOrder returns the node values in root-first order. Complexity: O(n).
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.root)

	return out
}

// PostOrder returns the node values children-first. Complexity: O(n).
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		for _, child := range n.children {
			walk(child)
		}
		out = append(out, n.value)
	}
	walk(t.root)

	return out
}

// LevelOrder returns the node values level by level, left to right within
// each level. Complexity: O(n).
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}

	frontier := []*Node[T]{t.root}
	for len(frontier) > 0 {
		n := frontier[0]
		frontier = frontier[1:]
		out = append(out, n.value)
		frontier = append(frontier, n.children...)
	}

	return out
}

// Height returns the length of the longest root-to-leaf path: -1 for an
// empty tree, 0 for a lone root. Complexity: O(n).
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

func heightOf[T comparable](n *Node[T]) int {
	if n == nil {
		return -1
	}

	best := -1
	for _, child := range n.children {
		if h := heightOf(child); h > best {
			best = h
		}
	}

	return best + 1
}

// String renders the tree as "cap[root: [children...]]"; an unbounded tree
// prints "∞" for the cap and an empty tree prints "<empty tree>".
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "<empty tree>"
	}

	arity := "∞"
	if t.maxChildren > 0 {
		arity = fmt.Sprintf("%d", t.maxChildren)
	}

	return fmt.Sprintf("%s[%s]", arity, t.root)
}
