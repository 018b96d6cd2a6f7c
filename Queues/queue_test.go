package Queues

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() || q.Size() != 0 {
		t.Fatal("new queue isn't empty")
	}
	v, e := q.Pop()
	if _, ok := e.(*EmptyQueueError); !ok {
		t.Fatalf("pop from empty queue returned %v, %v", v, e)
	}
	if _, has := q.Peek(); has {
		t.Error("empty queue has a front")
	}
}

func TestArrayQueue_PushPop(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		ref := linkedlistqueue.New()
		for range 10000 {
			if rg.Intn(3) == 0 {
				a, e := q.Pop()
				b, ok := ref.Dequeue()
				if (e == nil) != ok {
					t.Fatalf("pop error %v, reference says %v", e, ok)
				}
				if ok && a != b.(int) {
					t.Fatalf("popped %d, want %d", a, b)
				}
			} else {
				v := rg.Int()
				q.Push(v)
				ref.Enqueue(v)
			}
			if int(q.Size()) != ref.Size() {
				t.Fatalf("size is %d, want %d", q.Size(), ref.Size())
			}
			if a, has := q.Peek(); has {
				if b, _ := ref.Peek(); a != b.(int) {
					t.Fatalf("front is %d, want %d", a, b)
				}
			}
		}
	}
}

func TestArrayQueue_Shrink(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 50 {
		q.Push(i)
	}
	for range 45 {
		q.Pop()
	}
	for i := 50; i < 53; i++ {
		q.Push(i)
	}
	q.Shrink()
	for want := 45; want < 53; want++ {
		if v, e := q.Pop(); e != nil || v != want {
			t.Fatalf("popped %d, %v, want %d", v, e, want)
		}
	}
	if !q.Empty() {
		t.Error("queue isn't empty")
	}
	q.Push(1)
	q.Clear()
	if !q.Empty() {
		t.Error("queue isn't empty after clear")
	}
}
