package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/g-m-twostay/go-bst/Stacks"
)

// Order of a traversal.
type Order byte

const (
	InOrder    Order = iota //left subtree, node, right subtree. Ascending for a valid BST.
	PreOrder                //node, left subtree, right subtree.
	PostOrder               //left subtree, right subtree, node.
	LevelOrder              //breadth first, left to right within a level.
)

var orderNames = [...]string{"inorder", "preorder", "postorder", "levelorder"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "Order(?)"
}

// Strategy selects between the recursive and the iterative implementation
// of an operation.
type Strategy byte

const (
	Recursive Strategy = iota
	Iterative
)

func (s Strategy) String() string {
	if s == Iterative {
		return "iterative"
	}
	return "recursive"
}

// Walk [Tree.Walk]. Recursive.
// LevelOrder visits level d=1..Height() by descending to depth d from the
// root each time, so it costs O(n*D) instead of O(n).
// Unknown orders visit nothing.
func (u *BST[T]) Walk(o Order, f func(T) bool) {
	switch o {
	case InOrder:
		inOrder(u.root, f)
	case PreOrder:
		preOrder(u.root, f)
	case PostOrder:
		postOrder(u.root, f)
	case LevelOrder:
		for d, h := uint(1), height(u.root); d <= h; d++ {
			if !atDepth(u.root, d, f) {
				return
			}
		}
	}
}

// the walkers below return false once f asked to stop.

func inOrder[T constraints.Ordered](cur *node[T], f func(T) bool) bool {
	return cur == nil || inOrder(cur.l, f) && f(cur.v) && inOrder(cur.r, f)
}

func preOrder[T constraints.Ordered](cur *node[T], f func(T) bool) bool {
	return cur == nil || f(cur.v) && preOrder(cur.l, f) && preOrder(cur.r, f)
}

func postOrder[T constraints.Ordered](cur *node[T], f func(T) bool) bool {
	return cur == nil || postOrder(cur.l, f) && postOrder(cur.r, f) && f(cur.v)
}

// atDepth visits the nodes d levels below cur, the root of the subtree being level 1.
func atDepth[T constraints.Ordered](cur *node[T], d uint, f func(T) bool) bool {
	if cur == nil {
		return true
	} else if d == 1 {
		return f(cur.v)
	}
	return atDepth(cur.l, d-1, f) && atDepth(cur.r, d-1, f)
}

// Iter [Tree.Iter]
// InOrder and PreOrder use one stack, PostOrder fills a second stack with the
// reversed output on the first call of f, LevelOrder uses a queue.
// An unknown order gives an exhausted iterator.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D),
// O(n) for PostOrder and LevelOrder.
func (u *BST[T]) Iter(o Order) func() (T, bool) {
	switch o {
	case InOrder:
		return u.inOrderIter()
	case PreOrder:
		return u.preOrderIter()
	case PostOrder:
		return u.postOrderIter()
	case LevelOrder:
		return u.levelOrderIter()
	}
	return func() (r T, has bool) { return }
}

func (u *BST[T]) inOrderIter() func() (T, bool) {
	st := Stacks.MakeArrayStack[*node[T]](0)
	cur := u.root
	return func() (r T, has bool) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		if top, e := st.Pop(); e == nil {
			cur = top.r
			return top.v, true
		}
		return
	}
}

func (u *BST[T]) preOrderIter() func() (T, bool) {
	st := Stacks.MakeArrayStack[*node[T]](0)
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		top, e := st.Pop()
		if e != nil {
			return
		}
		if top.r != nil {
			st.Push(top.r)
		}
		if top.l != nil {
			st.Push(top.l)
		}
		return top.v, true
	}
}

func (u *BST[T]) postOrderIter() func() (T, bool) {
	var out Stacks.Stack[*node[T]]
	return func() (r T, has bool) {
		if out == nil {
			out = Stacks.MakeArrayStack[*node[T]](0)
			in := Stacks.MakeArrayStack[*node[T]](0)
			if u.root != nil {
				in.Push(u.root)
			}
			for !in.Empty() {
				top, _ := in.Pop()
				out.Push(top)
				if top.l != nil {
					in.Push(top.l)
				}
				if top.r != nil {
					in.Push(top.r)
				}
			}
		}
		if top, e := out.Pop(); e == nil {
			return top.v, true
		}
		return
	}
}

func (u *BST[T]) levelOrderIter() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](0)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		front, e := q.Pop()
		if e != nil {
			return
		}
		if front.l != nil {
			q.Push(front.l)
		}
		if front.r != nil {
			q.Push(front.r)
		}
		return front.v, true
	}
}

// Traverse [Tree.Traverse]
// Returns nil for an empty tree.
func (u *BST[T]) Traverse(o Order, s Strategy) (vs []T) {
	if s == Iterative {
		next := u.Iter(o)
		for v, ok := next(); ok; v, ok = next() {
			vs = append(vs, v)
		}
	} else {
		u.Walk(o, func(v T) bool {
			vs = append(vs, v)
			return true
		})
	}
	return
}
