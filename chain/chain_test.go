package chain_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/astrokit/chains/chain"
)

// TestChain_PushBack verifies append order and head/tail/size bookkeeping.
func TestChain_PushBack(t *testing.T) {
	c := chain.New[int]()
	if !c.IsEmpty() || c.Head() != nil || c.Tail() != nil {
		t.Fatalf("new chain not empty: len=%d head=%v tail=%v", c.Len(), c.Head(), c.Tail())
	}

	c.PushBack(1)
	if c.Head() != c.Tail() {
		t.Errorf("single element: head and tail must be the same node")
	}

	c.PushBack(2)
	c.PushBack(3)
	if got, want := c.Values(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d; want 3", c.Len())
	}
	if c.Tail().Value != 3 || c.Tail().Next() != nil {
		t.Errorf("tail = %v; want terminal node holding 3", c.Tail())
	}
}

// TestChain_PushFront verifies prepend order.
func TestChain_PushFront(t *testing.T) {
	c := chain.New[string]()
	c.PushFront("b")
	c.PushFront("a")
	if got, want := c.Values(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}
	if c.Tail().Value != "b" {
		t.Errorf("tail = %q; want b", c.Tail().Value)
	}
}

// TestChain_PopFront covers the success, single-element, and empty cases.
func TestChain_PopFront(t *testing.T) {
	c := chain.New(1, 2)

	if v, err := c.PopFront(); err != nil || v != 1 {
		t.Errorf("PopFront = (%d, %v); want (1, nil)", v, err)
	}
	if v, err := c.PopFront(); err != nil || v != 2 {
		t.Errorf("PopFront = (%d, %v); want (2, nil)", v, err)
	}
	// Draining the last element must also reset the tail.
	if c.Tail() != nil || c.Head() != nil || c.Len() != 0 {
		t.Errorf("drained chain not empty: len=%d", c.Len())
	}
	if _, err := c.PopFront(); !errors.Is(err, chain.ErrEmptyChain) {
		t.Errorf("empty pop: want ErrEmptyChain, got %v", err)
	}
}

// TestChain_InsertRemoveAfter exercises the positional primitives the list
// package depends on.
func TestChain_InsertRemoveAfter(t *testing.T) {
	c := chain.New(1, 3)
	c.InsertAfter(c.Head(), 2)
	if got, want := c.Values(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after middle insert: %v; want %v", got, want)
	}

	// Inserting after the tail must move the tail.
	c.InsertAfter(c.Tail(), 4)
	if c.Tail().Value != 4 {
		t.Errorf("tail = %d; want 4", c.Tail().Value)
	}

	// Removing the node after position 2 (value 4) restores the tail.
	if v, ok := c.RemoveAfter(c.NodeAt(2)); !ok || v != 4 {
		t.Errorf("RemoveAfter = (%d, %t); want (4, true)", v, ok)
	}
	if c.Tail().Value != 3 || c.Len() != 3 {
		t.Errorf("tail=%d len=%d; want tail=3 len=3", c.Tail().Value, c.Len())
	}

	// Removing past the tail reports false without mutating.
	if _, ok := c.RemoveAfter(c.Tail()); ok {
		t.Error("RemoveAfter(tail) = true; want false")
	}
	if c.Len() != 3 {
		t.Errorf("Len mutated on failed removal: %d", c.Len())
	}
}

// TestChain_NodeAt verifies positional lookup bounds.
func TestChain_NodeAt(t *testing.T) {
	c := chain.New("a", "b", "c")
	if n := c.NodeAt(1); n == nil || n.Value != "b" {
		t.Errorf("NodeAt(1) = %v; want node holding b", n)
	}
	for _, i := range []int{-1, 3} {
		if n := c.NodeAt(i); n != nil {
			t.Errorf("NodeAt(%d) = %v; want nil", i, n)
		}
	}
}

// TestChain_ExtendAndClear covers bulk append and reset.
func TestChain_ExtendAndClear(t *testing.T) {
	c := chain.New(1)
	c.Extend(slices.Values([]int{2, 3}))
	if got, want := c.Values(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("after Extend: %v; want %v", got, want)
	}

	c.Clear()
	if !c.IsEmpty() || c.Head() != nil || c.Tail() != nil {
		t.Errorf("after Clear: len=%d; want empty", c.Len())
	}
}

// TestChain_Equal checks structural equality semantics.
func TestChain_Equal(t *testing.T) {
	a := chain.New(1, 2, 3)
	b := chain.New(1, 2, 3)
	if !a.Equal(b) {
		t.Error("equal chains reported unequal")
	}
	b.PushBack(4)
	if a.Equal(b) {
		t.Error("different lengths reported equal")
	}
	c := chain.New(1, 2, 4)
	if a.Equal(c) {
		t.Error("different values reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil comparand reported equal")
	}
	if !a.Equal(a) {
		t.Error("chain not equal to itself")
	}
}

// TestChain_Clone verifies a deep structural copy with shared values.
func TestChain_Clone(t *testing.T) {
	a := chain.New(1, 2, 3)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone differs: %v vs %v", a.Values(), b.Values())
	}
	// New links: mutating the clone must not touch the original.
	b.PushBack(4)
	if a.Len() != 3 {
		t.Errorf("original mutated through clone: len=%d", a.Len())
	}
}

// TestChain_AllRestartable asserts that every All() call is a fresh traversal.
func TestChain_AllRestartable(t *testing.T) {
	c := chain.New(1, 2, 3)
	seq := c.All()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("restarted traversal differs: %v vs %v", first, second)
	}

	// Early break must not poison later traversals.
	for range seq {
		break
	}
	if got := slices.Collect(seq); len(got) != 3 {
		t.Errorf("traversal after break = %v; want 3 elements", got)
	}
}

// TestChain_String pins the rendered form.
func TestChain_String(t *testing.T) {
	if got, want := chain.New(1, 2).String(), "{1, 2}"; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
	if got, want := chain.New[int]().String(), "{}"; got != want {
		t.Errorf("empty String = %q; want %q", got, want)
	}
}
