package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// A node in the BST. Each of l and r exclusively owns its subtree; there are
// no parent links.
// The zero value is a leaf holding the zero value of T.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// insert v to the subtree rooting at cur recursively. Returns the root of the
// resulting subtree, which the caller must store back into the link it read
// cur from, and whether v was added. An equal key leaves the subtree as is.
// Time: O(D)
func insert[T constraints.Ordered](cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return &node[T]{v: v}, true
	}
	inserted := false
	if c := cmp.Compare(v, cur.v); c < 0 {
		cur.l, inserted = insert(cur.l, v)
	} else if c > 0 {
		cur.r, inserted = insert(cur.r, v)
	}
	return cur, inserted
}

// remove v from the subtree rooting at cur recursively. Returns the root of
// the resulting subtree and whether v was found.
// A node with two children takes the key of its in-order successor, and the
// successor is then removed from the right subtree, where it has no left child.
// Time: O(D)
func remove[T constraints.Ordered](cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if c := cmp.Compare(v, cur.v); c < 0 {
		cur.l, removed = remove(cur.l, v)
	} else if c > 0 {
		cur.r, removed = remove(cur.r, v)
	} else if cur.l == nil {
		r := cur.r
		cur.r = nil
		return r, true
	} else if cur.r == nil {
		l := cur.l
		cur.l = nil
		return l, true
	} else {
		cur.v = minNode(cur.r).v
		cur.r, _ = remove(cur.r, cur.v)
		removed = true
	}
	return cur, removed
}

// search for v in the subtree rooting at cur recursively.
func search[T constraints.Ordered](cur *node[T], v T) *node[T] {
	if cur == nil {
		return nil
	}
	if c := cmp.Compare(v, cur.v); c < 0 {
		return search(cur.l, v)
	} else if c > 0 {
		return search(cur.r, v)
	}
	return cur
}

// minNode is the left most node of the subtree rooting at cur, nil if cur is nil.
func minNode[T constraints.Ordered](cur *node[T]) *node[T] {
	if cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
	}
	return cur
}

// maxNode is the right most node of the subtree rooting at cur, nil if cur is nil.
func maxNode[T constraints.Ordered](cur *node[T]) *node[T] {
	if cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
	}
	return cur
}

// copyNode returns a deep copy of the subtree rooting at cur.
func copyNode[T constraints.Ordered](cur *node[T]) *node[T] {
	if cur == nil {
		return nil
	}
	return &node[T]{cur.v, copyNode(cur.l), copyNode(cur.r)}
}
