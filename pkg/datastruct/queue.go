package datastruct

import (
	"math/bits"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// Queue is a FIFO queue on a ring buffer.
// The buffer capacity is always a power of two, so positions wrap with a mask.
type Queue[T any] struct {
	al   alloc.Allocator[T]
	buf  []T // len(buf) is the capacity
	head int // index of the first element
	size int
}

var _ Reversible[any] = (*Queue[any])(nil)

const minQueueCapacity = 8

func NewQueue[T any](al alloc.Allocator[T]) *Queue[T] {
	return &Queue[T]{al: al}
}

// FromQueue drains the iterator into a new Queue, the first element ends up at the front.
func FromQueue[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*Queue[T], error) {
	q := NewQueue(al)
	err := fill("queue", al, it, clone,
		func(v T) bool { q.Enqueue(v); return true },
		func() {
			if clone {
				q.Clear()
			}
		})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.resize(q.size + 1)
	}
	q.buf[q.index(q.size)] = v
	q.size++
}

// Dequeue takes the front element out of the queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = q.index(1)
	q.size--
	if 0 < q.size && q.size <= len(q.buf)/4 && minQueueCapacity < len(q.buf) {
		q.resize(q.size)
	}
	return v, true
}

// Peek returns the front element without taking it out.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

func (q *Queue[T]) Len() int { return q.size }

func (q *Queue[T]) Clear() {
	for i := 0; i < q.size; i++ {
		release(q.al, q.buf[q.index(i)])
	}
	clear(q.buf)
	q.head, q.size = 0, 0
}

// Iter walks the queue from front to back.
func (q *Queue[T]) Iter() iterators.Iterator[T] {
	return newIndexIter[T](q.al, "queue.iter", q.Len, func(i int) T { return q.buf[q.index(i)] })
}

// IterReverse walks the queue from back to front.
func (q *Queue[T]) IterReverse() iterators.Iterator[T] {
	return newIndexIter[T](q.al, "queue.iter", q.Len, func(i int) T { return q.buf[q.index(q.size-1-i)] })
}

// index maps the nth element to its position in the buffer.
func (q *Queue[T]) index(n int) int {
	return (q.head + n) & (len(q.buf) - 1)
}

// resize moves the elements to a buffer that can hold at least n elements.
func (q *Queue[T]) resize(n int) {
	capacity := minQueueCapacity
	if capacity < n {
		capacity = 1 << uint(bits.Len(uint(n-1)))
	}
	buf := make([]T, capacity)
	if q.head+q.size <= len(q.buf) {
		copy(buf, q.buf[q.head:q.head+q.size])
	} else {
		k := copy(buf, q.buf[q.head:])
		copy(buf[k:], q.buf[:q.index(q.size)])
	}
	q.buf = buf
	q.head = 0
}
