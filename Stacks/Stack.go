package Stacks

// Stack is a LIFO container. Pop on an empty Stack returns an
// *EmptyStackError and the zero value of T; Peek reports absence through
// its second return value.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() uint
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
