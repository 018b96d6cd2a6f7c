package Stacks

// arrStack keeps the top of the stack at the end of content.
type arrStack[T any] struct {
	content []T
}

// MakeArrayStack returns an unbounded stack with room for initCap items
// before the backing slice grows.
func MakeArrayStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (u arrStack[T]) Empty() bool {
	return len(u.content) == 0
}

func (u arrStack[T]) Size() uint {
	return uint(len(u.content))
}

// Push
// Time: amortized O(1)
func (u *arrStack[T]) Push(item T) {
	u.content = append(u.content, item)
}

// Pop zeroes the vacated slot so that popped references can be collected.
func (u *arrStack[T]) Pop() (T, error) {
	if top := len(u.content) - 1; top < 0 {
		return *new(T), &EmptyStackError{}
	} else {
		t := u.content[top]
		u.content[top] = *new(T)
		u.content = u.content[:top]
		return t, nil
	}
}

func (u arrStack[T]) Peek() (item T, has bool) {
	if len(u.content) == 0 {
		return
	}
	return u.content[len(u.content)-1], true
}

// Clear keeps the backing array for reuse.
func (u *arrStack[T]) Clear() {
	clear(u.content)
	u.content = u.content[:0]
}
