package iterators

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/errorkit"
)

// Copy yields a clone of every upstream element, made with the allocator's copy function.
// The clone of the current position is cached until Next, and belongs to the caller.
// Construction fails with ErrNoCopyFunc when the allocator can not copy.
// Copy can not move backwards or be reset.
func Copy[T any](a alloc.Allocator[T], iter Iterator[T]) Iterator[T] {
	lc, err := Open(a, "copy", iter)
	if err != nil {
		return Invalid[T](err, iter)
	}
	if !a.CanCopy() {
		lc.Release()
		return Invalid[T](ErrNoCopyFunc, iter)
	}
	return &copyIter[T]{Lifecycle: lc, Iterator: iter, Allocator: a}
}

type copyIter[T any] struct {
	Lifecycle
	forward
	Iterator  Iterator[T]
	Allocator alloc.Allocator[T]

	clone  T
	cached bool
	err    error
}

func (i *copyIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	i.discard()
	return i.Iterator.Close()
}

func (i *copyIter[T]) Err() error {
	return errorkit.Merge(i.err, i.Iterator.Err())
}

func (i *copyIter[T]) HasNext() bool {
	return !i.Closed() && i.err == nil && i.Iterator.HasNext()
}

func (i *copyIter[T]) Get() (T, bool) {
	var zero T
	if i.cached {
		return i.clone, true
	}
	if !i.HasNext() {
		return zero, false
	}
	v, ok := i.Iterator.Get()
	if !ok {
		return zero, false
	}
	clone, err := i.Allocator.Copy(v)
	if err != nil {
		i.err = err
		return zero, false
	}
	i.clone, i.cached = clone, true
	return clone, true
}

func (i *copyIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.discard()
	return i.Iterator.Next()
}

func (i *copyIter[T]) Reset() {}

// discard forgets the previous clone, it was handed over to the caller with Get.
func (i *copyIter[T]) discard() {
	var zero T
	i.clone, i.cached = zero, false
}
