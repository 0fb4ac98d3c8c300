package iterators

import "github.com/szmathias/dscontainers/pkg/alloc"

// Chain concatenates the iterators in the given order.
// Exhausted iterators, including those that are empty from the start, are skipped transparently,
// and the chain is exhausted only when all of them are.
// Chain without iterators is a valid empty iterator.
// Chain can not move backwards or be reset.
func Chain[T any](a alloc.Arena, iters ...Iterator[T]) Iterator[T] {
	var ups = make([]Upstream, 0, len(iters))
	for _, it := range iters {
		ups = append(ups, it)
	}
	lc, err := Open(a, "chain", ups...)
	if err != nil {
		return Invalid[T](err, ups...)
	}
	return &chainIter[T]{Lifecycle: lc, Iterators: iters}
}

type chainIter[T any] struct {
	Lifecycle
	forward
	Iterators []Iterator[T]

	index int
}

func (i *chainIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	return closeAll(i.Iterators...)
}

func (i *chainIter[T]) Err() error {
	return errAll(i.Iterators...)
}

func (i *chainIter[T]) HasNext() bool {
	_, ok := i.current()
	return ok
}

func (i *chainIter[T]) Get() (T, bool) {
	it, ok := i.current()
	if !ok {
		var zero T
		return zero, false
	}
	return it.Get()
}

func (i *chainIter[T]) Next() bool {
	it, ok := i.current()
	if !ok {
		return false
	}
	return it.Next()
}

func (i *chainIter[T]) Reset() {}

// current returns the active iterator, moving past the exhausted ones.
// An iterator that stopped with an error is not skipped, so the failure ends the chain.
func (i *chainIter[T]) current() (Iterator[T], bool) {
	if i.Closed() {
		return nil, false
	}
	for i.index < len(i.Iterators) {
		it := i.Iterators[i.index]
		if it.HasNext() {
			return it, true
		}
		if it.Err() != nil {
			return nil, false
		}
		i.index++
	}
	return nil, false
}
