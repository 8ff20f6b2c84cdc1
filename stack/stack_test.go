package stack_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/astrokit/chains/stack"
)

// TestStack_LIFO pins the core property: pushes a,b,c pop as c,b,a.
func TestStack_LIFO(t *testing.T) {
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	for _, want := range []string{"c", "b", "a"} {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if v != want {
			t.Errorf("Pop = %q; want %q", v, want)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("Len = %d; want 0", s.Len())
	}
}

// TestStack_EmptyErrors verifies the empty-container failures.
func TestStack_EmptyErrors(t *testing.T) {
	s := stack.New[int]()
	if _, err := s.Pop(); !errors.Is(err, stack.ErrEmptyStack) {
		t.Errorf("empty Pop: want ErrEmptyStack, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, stack.ErrEmptyStack) {
		t.Errorf("empty Peek: want ErrEmptyStack, got %v", err)
	}
	if _, err := s.Top(); !errors.Is(err, stack.ErrEmptyStack) {
		t.Errorf("empty Top: want ErrEmptyStack, got %v", err)
	}
}

// TestStack_Peek returns the top without consuming it.
func TestStack_Peek(t *testing.T) {
	s := stack.New(1, 2) // 2 on top
	v, err := s.Peek()
	if err != nil || v != 2 {
		t.Errorf("Peek = (%d, %v); want (2, nil)", v, err)
	}
	if s.Len() != 2 {
		t.Errorf("Peek consumed an element: len=%d", s.Len())
	}
}

// TestStack_Extend preserves the source order at the top of the stack.
func TestStack_Extend(t *testing.T) {
	s := stack.New[int]()
	s.Push(9) // old content, must end up below

	s.Extend(slices.Values([]int{1, 2, 3}))
	if got, want := s.Values(), []int{1, 2, 3, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("top-to-bottom = %v; want %v", got, want)
	}
}

// TestStack_LenTracking: Len moves by exactly one per push/pop.
func TestStack_LenTracking(t *testing.T) {
	s := stack.New[int]()
	for i := 1; i <= 5; i++ {
		s.Push(i)
		if s.Len() != i {
			t.Fatalf("Len after %d pushes = %d", i, s.Len())
		}
	}
	for i := 4; i >= 0; i-- {
		if _, err := s.Pop(); err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if s.Len() != i {
			t.Fatalf("Len after pop = %d; want %d", s.Len(), i)
		}
	}
}

// TestStack_EqualClone verifies order-sensitive equality and copy isolation.
func TestStack_EqualClone(t *testing.T) {
	a := stack.New(1, 2, 3)
	b := stack.New(1, 2, 3)
	if !a.Equal(b) {
		t.Error("identical stacks unequal")
	}
	c := stack.New(3, 2, 1)
	if a.Equal(c) {
		t.Error("reversed stack reported equal")
	}

	d := a.Clone()
	if !a.Equal(d) {
		t.Fatal("clone unequal")
	}
	d.Push(0)
	if a.Len() != 3 {
		t.Error("original mutated through clone")
	}
}
