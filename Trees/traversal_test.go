package Trees

import (
	"slices"
	"testing"

	"github.com/google/btree"
)

var allOrders = []Order{InOrder, PreOrder, PostOrder, LevelOrder}

func TestTraverse_Scenario(t *testing.T) {
	want := map[Order][]int{
		InOrder:    {20, 30, 40, 50, 60, 70, 80},
		PreOrder:   {50, 30, 20, 40, 70, 60, 80},
		PostOrder:  {20, 40, 30, 60, 80, 70, 50},
		LevelOrder: {50, 30, 70, 20, 40, 60, 80},
	}
	tree := scenario()
	for _, o := range allOrders {
		for _, s := range []Strategy{Recursive, Iterative} {
			if a := tree.Traverse(o, s); !slices.Equal(a, want[o]) {
				t.Errorf("%v %v is %v, want %v", s, o, a, want[o])
			}
		}
	}
}

func TestTraverse_Equivalent(t *testing.T) {
	for range 20 {
		tree, _ := randomTree(t, rg.Intn(tAddN/4), tAddValRange)
		for _, o := range allOrders {
			a, b := tree.Traverse(o, Recursive), tree.Traverse(o, Iterative)
			if !slices.Equal(a, b) {
				t.Fatalf("%v differs between strategies", o)
			}
			if len(a) != int(tree.Size()) {
				t.Fatalf("%v has %d elements, want %d", o, len(a), tree.Size())
			}
		}
	}
}

func TestTraverse_InOrderSorted(t *testing.T) {
	tree := New[int]()
	ref := btree.NewOrderedG[int](4)
	for range tAddN {
		v := rg.Intn(tAddValRange)
		tree.InsertIter(v)
		ref.ReplaceOrInsert(v)
	}
	for range tAddN / 2 {
		v := rg.Intn(tAddValRange)
		tree.Remove(v)
		ref.Delete(v)
	}
	want := make([]int, 0, ref.Len())
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	s := tree.Traverse(InOrder, Iterative)
	if !slices.IsSorted(s) {
		t.Error("in-order is not sorted")
	}
	if !slices.Equal(s, want) {
		t.Error("in-order differs from the reference tree")
	}
}

func TestTraverse_Restartable(t *testing.T) {
	tree, _ := randomTree(t, tAddN/4, tAddValRange)
	for _, o := range allOrders {
		first := tree.Traverse(o, Iterative)
		if !slices.Equal(first, tree.Traverse(o, Iterative)) || !slices.Equal(first, tree.Traverse(o, Recursive)) {
			t.Errorf("%v changed between runs", o)
		}
	}
	if !tree.Valid() {
		t.Error("traversal corrupted the tree")
	}
}

func TestWalk_Stop(t *testing.T) {
	tree := scenario()
	for _, o := range allOrders {
		for k := 1; k <= 7; k++ {
			var s []int
			tree.Walk(o, func(v int) bool {
				s = append(s, v)
				return len(s) < k
			})
			if want := tree.Traverse(o, Iterative)[:k]; !slices.Equal(s, want) {
				t.Errorf("%v stopped after %d gives %v, want %v", o, k, s, want)
			}
		}
	}
}

func TestIter_Exhausted(t *testing.T) {
	tree := scenario()
	for _, o := range allOrders {
		next := tree.Iter(o)
		for range tree.Size() {
			if _, ok := next(); !ok {
				t.Fatalf("%v ended early", o)
			}
		}
		for range 3 {
			if v, ok := next(); ok {
				t.Errorf("%v gave %d after exhaustion", o, v)
			}
		}
	}
	if _, ok := tree.Iter(Order(9))(); ok {
		t.Error("unknown order gave an element")
	}
}

func TestTraverse_Empty(t *testing.T) {
	var tree BST[int]
	for _, o := range allOrders {
		if s := tree.Traverse(o, Recursive); s != nil {
			t.Errorf("recursive %v of empty tree is %v", o, s)
		}
		if s := tree.Traverse(o, Iterative); s != nil {
			t.Errorf("iterative %v of empty tree is %v", o, s)
		}
	}
}

func TestOrder_String(t *testing.T) {
	for o, want := range map[Order]string{InOrder: "inorder", PreOrder: "preorder", PostOrder: "postorder", LevelOrder: "levelorder", Order(7): "Order(?)"} {
		if o.String() != want {
			t.Errorf("%d is %q, want %q", o, o.String(), want)
		}
	}
	if Iterative.String() != "iterative" || Recursive.String() != "recursive" {
		t.Error("wrong strategy names")
	}
}
