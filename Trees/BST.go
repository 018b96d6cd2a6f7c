package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bst/Stacks"
)

var _ Tree[int] = (*BST[int])(nil)

// BST is an unbalanced binary search tree with no repeated values. It holds
// nothing but the root pointer, so the zero value is an empty tree ready to use.
// Nothing rebalances the tree: the height D is log2(n) on average for random
// insertion orders but n for sorted ones. Methods noted as recursive use O(D)
// call stack; the iterative equivalents keep their state on the heap.
// A BST isn't safe for concurrent use.
type BST[T constraints.Ordered] struct {
	root *node[T] //nil for the empty tree.
}

// New returns an empty BST.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{}
}

// From returns a BST holding vs, inserted from left to right with
// InsertIter. Repeated values are dropped.
func From[T constraints.Ordered](vs ...T) *BST[T] {
	u := New[T]()
	for _, v := range vs {
		u.InsertIter(v)
	}
	return u
}

// InvalidSliceError is the panic value of Build when the given slice isn't
// sorted in strictly ascending order.
type InvalidSliceError[T any] struct {
	I          int //index of the first element breaking the order.
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v is followed by %v", e.I, e.Prev, e.Next)
}

// Build a BST of minimal height using the given slice recursively. This is
// faster than repeatedly calling Insert.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements. If safe==true, this function will check the
// conditions and panic with InvalidSliceError if they are broken. Otherwise
// it is up to the user to ensure the conditions are met, and the tree will be
// corrupt if they aren't.
// Time: O(n).
func Build[T constraints.Ordered](sli []T, safe bool) *BST[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if cmp.Compare(sli[i-1], sli[i]) >= 0 {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) > 0 {
			mid := len(s) >> 1
			return &node[T]{s[mid], build(s[0:mid]), build(s[mid+1:])}
		} else {
			return nil
		}
	}
	return &BST[T]{build(sli)}
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BST[T]) Insert(v T) (inserted bool) {
	u.root, inserted = insert(u.root, v)
	return
}

// InsertIter [Tree.InsertIter]
// The new node is built first and linked only after the walk found an empty
// slot for it; on a repeated value it is dropped.
// Time: O(D); Space: O(1)
func (u *BST[T]) InsertIter(v T) bool {
	n := &node[T]{v: v}
	if u.root == nil {
		u.root = n
		return true
	}
	var p *node[T]
	c := 0
	for cur := u.root; cur != nil; {
		p = cur
		if c = cmp.Compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return false
		}
	}
	if c < 0 {
		p.l = n
	} else {
		p.r = n
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove. A node with two children is replaced by its
// in-order successor.
// Time: O(D)
func (u *BST[T]) Remove(v T) (removed bool) {
	u.root, removed = remove(u.root, v)
	return
}

// Search [Tree.Search]. Recursive.
// Time: O(D)
func (u *BST[T]) Search(v T) *T {
	if n := search(u.root, v); n != nil {
		return &n.v
	}
	return nil
}

// SearchIter [Tree.SearchIter]
// Time: O(D); Space: O(1)
func (u *BST[T]) SearchIter(v T) *T {
	for cur := u.root; cur != nil; {
		if c := cmp.Compare(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.SearchIter(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if n := minNode(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if n := maxNode(u.root); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Copy returns a BST with the same shape and elements as u. Recursive.
// Time: O(n)
func (u *BST[T]) Copy() *BST[T] {
	return &BST[T]{copyNode(u.root)}
}

// Clear [Tree.Clear]
// Nodes are unlinked children first, so that a pointer kept from Search
// doesn't hold the rest of the tree in memory.
// Time: O(n); Space: O(D)
func (u *BST[T]) Clear() (released uint) {
	if u.root == nil {
		return
	}
	st := Stacks.MakeArrayStack[*node[T]](0)
	for cur, last := u.root, (*node[T])(nil); cur != nil || !st.Empty(); {
		if cur != nil {
			st.Push(cur)
			cur = cur.l
			continue
		}
		top, _ := st.Peek()
		if top.r != nil && top.r != last {
			cur = top.r
		} else {
			st.Pop()
			top.l, top.r = nil, nil
			released++
			last = top
		}
	}
	u.root = nil
	return
}
