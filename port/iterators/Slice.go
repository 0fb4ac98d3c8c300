package iterators

import "github.com/szmathias/dscontainers/pkg/alloc"

// Slice iterates over the elements of a slice.
// The slice is borrowed, the yielded elements still belong to it.
// It is bidirectional and can be reset.
func Slice[T any](a alloc.Arena, vs []T) Iterator[T] {
	lc, err := Open(a, "slice")
	if err != nil {
		return Invalid[T](err)
	}
	return &sliceIter[T]{Lifecycle: lc, Slice: vs}
}

type sliceIter[T any] struct {
	Lifecycle
	Slice []T

	index int
}

func (i *sliceIter[T]) Close() error {
	i.Release()
	return nil
}

func (i *sliceIter[T]) Err() error { return nil }

func (i *sliceIter[T]) HasNext() bool {
	return !i.Closed() && i.index < len(i.Slice)
}

func (i *sliceIter[T]) Get() (T, bool) {
	if !i.HasNext() {
		var zero T
		return zero, false
	}
	return i.Slice[i.index], true
}

func (i *sliceIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.index++
	return true
}

func (i *sliceIter[T]) HasPrev() bool {
	return !i.Closed() && 0 < i.index
}

func (i *sliceIter[T]) Prev() bool {
	if !i.HasPrev() {
		return false
	}
	i.index--
	return true
}

func (i *sliceIter[T]) Reset() {
	i.index = 0
}
