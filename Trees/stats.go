package Trees

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

func height[T constraints.Ordered](c *node[T]) uint {
	if c == nil {
		return 0
	}
	return 1 + max(height(c.l), height(c.r))
}

func size[T constraints.Ordered](c *node[T]) uint {
	if c == nil {
		return 0
	}
	return 1 + size(c.l) + size(c.r)
}

func leaves[T constraints.Ordered](c *node[T]) uint {
	if c == nil {
		return 0
	} else if c.l == nil && c.r == nil {
		return 1
	}
	return leaves(c.l) + leaves(c.r)
}

// valid checks c against the open interval (lo, hi). A nil bound is unbounded.
func valid[T constraints.Ordered](c *node[T], lo, hi *T) bool {
	if c == nil {
		return true
	}
	if (lo != nil && cmp.Compare(c.v, *lo) <= 0) || (hi != nil && cmp.Compare(c.v, *hi) >= 0) {
		return false
	}
	return valid(c.l, lo, &c.v) && valid(c.r, &c.v, hi)
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() uint {
	return height(u.root)
}

// Size [Tree.Size]. Recursive.
// Time: O(n)
func (u *BST[T]) Size() uint {
	return size(u.root)
}

// Leaves [Tree.Leaves]. Recursive.
// Time: O(n)
func (u *BST[T]) Leaves() uint {
	return leaves(u.root)
}

// Valid [Tree.Valid]. Recursive.
// Checking only each parent against its children isn't enough: a left
// descendant of a right child can still be smaller than the grandparent.
// Time: O(n)
func (u *BST[T]) Valid() bool {
	return valid[T](u.root, nil, nil)
}

// Stats summarizes a tree. Min and Max are nil for an empty tree.
type Stats[T any] struct {
	Height, Size, Leaves uint
	Valid                bool
	Min, Max             *T
}

// Stats of u.
func (u *BST[T]) Stats() Stats[T] {
	s := Stats[T]{Height: u.Height(), Size: u.Size(), Leaves: u.Leaves(), Valid: u.Valid()}
	if n := minNode(u.root); n != nil {
		s.Min = &n.v
	}
	if n := maxNode(u.root); n != nil {
		s.Max = &n.v
	}
	return s
}

// Render writes the tree rotated a quarter turn counterclockwise: one element
// per line, right subtree above its parent and left subtree below, indented
// by four spaces per level. Writes nothing for an empty tree. Recursive.
func (u *BST[T]) Render(w io.Writer) error {
	return render(w, u.root, 0)
}

func render[T constraints.Ordered](w io.Writer, c *node[T], d int) error {
	if c == nil {
		return nil
	}
	if err := render(w, c.r, d+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("    ", d), c.v); err != nil {
		return err
	}
	return render(w, c.l, d+1)
}
