package ranges

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// Unbounded makes Repeat yield its value forever.
const Unbounded = -1

// Repeat yields the same value count times.
// A negative count repeats without end, so it should be bounded with iterators.Take.
// The value is yielded as is, use iterators.Copy to hand out clones.
func Repeat[T any](a alloc.Arena, value T, count int) iterators.Iterator[T] {
	lc, err := iterators.Open(a, "repeat")
	if err != nil {
		return iterators.Invalid[T](err)
	}
	return &repeatIter[T]{Lifecycle: lc, Value: value, Count: count}
}

type repeatIter[T any] struct {
	iterators.Lifecycle
	Value T
	Count int

	index int
}

func (i *repeatIter[T]) Close() error {
	i.Release()
	return nil
}

func (i *repeatIter[T]) Err() error { return nil }

func (i *repeatIter[T]) HasNext() bool {
	return !i.Closed() && (i.Count < 0 || i.index < i.Count)
}

func (i *repeatIter[T]) Get() (T, bool) {
	if !i.HasNext() {
		var zero T
		return zero, false
	}
	return i.Value, true
}

func (i *repeatIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	if 0 <= i.Count {
		i.index++
	}
	return true
}

func (i *repeatIter[T]) HasPrev() bool { return false }
func (i *repeatIter[T]) Prev() bool    { return false }

func (i *repeatIter[T]) Reset() { i.index = 0 }
