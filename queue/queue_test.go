package queue_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/astrokit/chains/queue"
)

// TestQueue_FIFO pins the core property: enqueues a,b,c dequeue as a,b,c.
func TestQueue_FIFO(t *testing.T) {
	q := queue.New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	for _, want := range []string{"a", "b", "c"} {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if v != want {
			t.Errorf("Dequeue = %q; want %q", v, want)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("Len = %d; want 0", q.Len())
	}
}

// TestQueue_EmptyErrors verifies empty-container failures on both accessors.
func TestQueue_EmptyErrors(t *testing.T) {
	q := queue.New[int]()
	if _, err := q.Dequeue(); !errors.Is(err, queue.ErrEmptyQueue) {
		t.Errorf("empty Dequeue: want ErrEmptyQueue, got %v", err)
	}
	if _, err := q.Peek(); !errors.Is(err, queue.ErrEmptyQueue) {
		t.Errorf("empty Peek: want ErrEmptyQueue, got %v", err)
	}
	if _, err := q.Front(); !errors.Is(err, queue.ErrEmptyQueue) {
		t.Errorf("empty Front: want ErrEmptyQueue, got %v", err)
	}
}

// TestQueue_PeekDoesNotConsume keeps the head in place.
func TestQueue_PeekDoesNotConsume(t *testing.T) {
	q := queue.New(1, 2)
	if v, err := q.Peek(); err != nil || v != 1 {
		t.Errorf("Peek = (%d, %v); want (1, nil)", v, err)
	}
	if q.Len() != 2 {
		t.Errorf("Peek consumed an element: len=%d", q.Len())
	}
}

// TestQueue_ExtendEqualClone covers bulk enqueue and value semantics.
func TestQueue_ExtendEqualClone(t *testing.T) {
	q := queue.New(1)
	q.Extend(slices.Values([]int{2, 3}))
	if got, want := q.Values(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v; want %v", got, want)
	}

	if !q.Equal(queue.New(1, 2, 3)) {
		t.Error("identical queues unequal")
	}
	if q.Equal(queue.New(3, 2, 1)) {
		t.Error("reordered queue reported equal")
	}

	c := q.Clone()
	c.Enqueue(4)
	if q.Len() != 3 {
		t.Error("original mutated through clone")
	}
}

// TestPriorityQueue_Order: (x,5),(y,1),(z,3) dequeues as y,z,x.
func TestPriorityQueue_Order(t *testing.T) {
	q := queue.NewPriority[string]()
	q.Enqueue("x", 5)
	q.Enqueue("y", 1)
	q.Enqueue("z", 3)

	for _, want := range []string{"y", "z", "x"} {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if v != want {
			t.Errorf("Dequeue = %q; want %q", v, want)
		}
	}
}

// TestPriorityQueue_StableTies: equal priorities dequeue in arrival order.
func TestPriorityQueue_StableTies(t *testing.T) {
	q := queue.NewPriority[string]()
	q.Enqueue("first", 2)
	q.Enqueue("second", 2)
	q.Enqueue("third", 2)
	q.Enqueue("urgent", 0)

	if got, want := q.Values(), []string{"urgent", "first", "second", "third"}; !reflect.DeepEqual(got, want) {
		t.Errorf("dequeue order = %v; want %v", got, want)
	}
}

// TestPriorityQueue_TailInsert keeps the tail honest when a new maximum
// lands at the rear.
func TestPriorityQueue_TailInsert(t *testing.T) {
	q := queue.NewPriority[int]()
	q.Enqueue(10, 1)
	q.Enqueue(30, 9) // rear
	q.Enqueue(20, 5) // middle

	if got, want := q.Values(), []int{10, 20, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}

	// Drain completely, then refill: tail bookkeeping must survive.
	for range 3 {
		if _, err := q.Dequeue(); err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
	}
	if _, err := q.Dequeue(); !errors.Is(err, queue.ErrEmptyQueue) {
		t.Errorf("empty Dequeue: want ErrEmptyQueue, got %v", err)
	}
	q.Enqueue(1, 1)
	q.Enqueue(2, 2)
	if got, want := q.Values(), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("after refill = %v; want %v", got, want)
	}
}

// TestPriorityQueue_PriorityPeek exposes the head's priority.
func TestPriorityQueue_PriorityPeek(t *testing.T) {
	q := queue.NewPriority[string]()
	q.Enqueue("low", 7)
	q.Enqueue("high", -1) // negative priorities are legal

	v, p, err := q.PriorityPeek()
	if err != nil || v != "high" || p != -1 {
		t.Errorf("PriorityPeek = (%q, %d, %v); want (high, -1, nil)", v, p, err)
	}
	if q.Len() != 2 {
		t.Errorf("peek consumed an element: len=%d", q.Len())
	}

	q.Clear()
	if _, _, err = q.PriorityPeek(); !errors.Is(err, queue.ErrEmptyQueue) {
		t.Errorf("empty PriorityPeek: want ErrEmptyQueue, got %v", err)
	}
}
