package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined. Receivers returning *T use nil
// for "not found"; the pointed value must not be modified.
// Methods implemented recursively should be noted, otherwise methods are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already in the Tree.
	Insert(v T) bool
	//InsertIter behaves exactly as Insert.
	InsertIter(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//isn't in the Tree.
	Remove(v T) bool
	//Search returns the stored element equal to v.
	Search(v T) *T
	//SearchIter returns exactly what Search returns.
	SearchIter(v T) *T
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Height of the tree, 0 for an empty tree.
	Height() uint
	//Size of the tree.
	Size() uint
	//Leaves is the number of nodes without children.
	Leaves() uint
	//Valid returns whether every element lies strictly between the bounds
	//given by all of its ancestors.
	Valid() bool
	//Walk the tree in the given order, calling f on each element until f
	//returns false.
	Walk(o Order, f func(T) bool)
	//Iter returns A closure function f acting like an iterator. f
	//gives elements in the order o.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	Iter(o Order) func() (T, bool)
	//Traverse collects the elements in order o using strategy s.
	Traverse(o Order, s Strategy) []T
	//Clear the tree, returning how many elements were released.
	Clear() uint
}
