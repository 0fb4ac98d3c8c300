package iterators

import "github.com/szmathias/dscontainers/pkg/alloc"

// Take passes through the first n elements of the upstream iterator,
// then reports exhaustion regardless of the upstream state,
// similarly how the coreutils "head" app works.
func Take[T any](a alloc.Arena, iter Iterator[T], n int) Iterator[T] {
	if n < 0 {
		return Invalid[T](ErrNegativeCount.F("take %d", n), iter)
	}
	lc, err := Open(a, "take", iter)
	if err != nil {
		return Invalid[T](err, iter)
	}
	return &takeIter[T]{Lifecycle: lc, Iterator: iter, Limit: n}
}

type takeIter[T any] struct {
	Lifecycle
	forward
	Iterator Iterator[T]
	Limit    int

	index int
}

func (i *takeIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	return i.Iterator.Close()
}

func (i *takeIter[T]) Err() error { return i.Iterator.Err() }

func (i *takeIter[T]) HasNext() bool {
	return !i.Closed() && i.index < i.Limit && i.Iterator.HasNext()
}

func (i *takeIter[T]) Get() (T, bool) {
	if !i.HasNext() {
		var zero T
		return zero, false
	}
	return i.Iterator.Get()
}

func (i *takeIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	if !i.Iterator.Next() {
		return false
	}
	i.index++
	return true
}

func (i *takeIter[T]) Reset() {
	if i.Closed() {
		return
	}
	i.Iterator.Reset()
	i.index = 0
}

// Skip discards the first n elements of the upstream iterator and passes through the rest unchanged.
// The elements are discarded on first use, not at construction.
func Skip[T any](a alloc.Arena, iter Iterator[T], n int) Iterator[T] {
	if n < 0 {
		return Invalid[T](ErrNegativeCount.F("skip %d", n), iter)
	}
	lc, err := Open(a, "skip", iter)
	if err != nil {
		return Invalid[T](err, iter)
	}
	return &skipIter[T]{Lifecycle: lc, Iterator: iter, Offset: n}
}

type skipIter[T any] struct {
	Lifecycle
	forward
	Iterator Iterator[T]
	Offset   int

	skipped bool
}

func (i *skipIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	return i.Iterator.Close()
}

func (i *skipIter[T]) Err() error { return i.Iterator.Err() }

func (i *skipIter[T]) HasNext() bool {
	return i.skip() && i.Iterator.HasNext()
}

func (i *skipIter[T]) Get() (T, bool) {
	if !i.skip() {
		var zero T
		return zero, false
	}
	return i.Iterator.Get()
}

func (i *skipIter[T]) Next() bool {
	return i.skip() && i.Iterator.Next()
}

func (i *skipIter[T]) Reset() {
	if i.Closed() {
		return
	}
	i.Iterator.Reset()
	i.skipped = false
}

// skip discards the offset once, and tells if the iterator is still usable.
func (i *skipIter[T]) skip() bool {
	if i.Closed() {
		return false
	}
	if i.skipped {
		return true
	}
	i.skipped = true
	for n := 0; n < i.Offset; n++ {
		if !i.Iterator.Next() {
			break
		}
	}
	return true
}
