package iterators

import "github.com/szmathias/dscontainers/pkg/alloc"

// Enumerated pairs an element with its ordinal index.
// Value is borrowed from the upstream iterator.
type Enumerated[T any] struct {
	Index int
	Value T
}

// Enumerate pairs every upstream element with an index that starts at start and grows by one per Next.
func Enumerate[T any](a alloc.Arena, iter Iterator[T], start int) Iterator[Enumerated[T]] {
	lc, err := Open(a, "enumerate", iter)
	if err != nil {
		return Invalid[Enumerated[T]](err, iter)
	}
	return &enumerateIter[T]{Lifecycle: lc, Iterator: iter, Start: start, index: start}
}

type enumerateIter[T any] struct {
	Lifecycle
	forward
	Iterator Iterator[T]
	Start    int

	index int
}

func (i *enumerateIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	return i.Iterator.Close()
}

func (i *enumerateIter[T]) Err() error { return i.Iterator.Err() }

func (i *enumerateIter[T]) HasNext() bool {
	return !i.Closed() && i.Iterator.HasNext()
}

func (i *enumerateIter[T]) Get() (Enumerated[T], bool) {
	if !i.HasNext() {
		return Enumerated[T]{}, false
	}
	v, ok := i.Iterator.Get()
	if !ok {
		return Enumerated[T]{}, false
	}
	return Enumerated[T]{Index: i.index, Value: v}, true
}

func (i *enumerateIter[T]) Next() bool {
	if !i.HasNext() || !i.Iterator.Next() {
		return false
	}
	i.index++
	return true
}

func (i *enumerateIter[T]) Reset() {
	if i.Closed() {
		return
	}
	i.Iterator.Reset()
	i.index = i.Start
}
