package Queues

// circArrQ is a ring buffer. content[head] is the front, content[tail] is the
// next free slot; sz disambiguates head==tail.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an unbounded queue with room for initCap items
// before the first resize. initCap may be 0.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz == 0 {
		this.head, this.tail = 0, 0
	} else if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
		this.head, this.tail = 0, this.sz
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
		this.head, this.tail = 0, this.sz
	}
	if this.tail == newLen {
		this.tail = 0
	}
	this.content = nc
}

// Shrink the backing array to the current size, keeping at least one slot.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

// Push grows the array by half its length, and by at least one slot.
// Time: amortized O(1)
func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T, has bool) {
	if this.Empty() {
		return
	} else {
		return this.content[this.head], true
	}
}
