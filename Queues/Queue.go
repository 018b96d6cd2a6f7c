package Queues

// Queue is a FIFO container. Pop on an empty Queue returns an
// *EmptyQueueError and the zero value of T. Peek follows the Trees
// convention: the second return value tells whether the first one is defined.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
