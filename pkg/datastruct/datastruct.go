// Package datastruct holds the containers that the iterators are built over.
//
// Every container is parameterised with an alloc.Allocator.
// Elements stored in a container belong to it, Clear releases them through the allocator,
// while elements taken out with Pop, Remove, Shift and the like are handed over to the caller.
//
// The iterators returned by Iter and IterReverse are live views of the container:
// index based views re-check their bounds on every call,
// node based views hold on to their current node.
// Mutating a container while it is being iterated never crashes,
// but the iteration may observe the change or end early.
package datastruct

import (
	"context"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/errorkit"
	"github.com/szmathias/dscontainers/pkg/logging"
	"github.com/szmathias/dscontainers/port/iterators"
)

const (
	ErrIndexOutOfRange    errorkit.Error = "index out of range"
	ErrElementUnavailable errorkit.Error = "iterator reported an element but could not provide it"
)

// Sizer is implemented by every container.
type Sizer interface {
	Len() int
}

// Iterable is a container that can be walked with an iterator.
type Iterable[T any] interface {
	Sizer
	Iter() iterators.Iterator[T]
	Clear()
}

// Reversible is an Iterable that can also be walked backwards.
type Reversible[T any] interface {
	Iterable[T]
	IterReverse() iterators.Iterator[T]
}

// fill drains the iterator into a container through add, and closes the iterator.
// add reports whether the element was kept, rejected clones are released right away.
// On failure unwind is called, which must release every clone the container already holds.
func fill[T any](name string, al alloc.Allocator[T], it iterators.Iterator[T], clone bool, add func(T) bool, unwind func()) error {
	if iterators.IsNil(it) {
		return iterators.ErrNilUpstream
	}
	err := errorkit.Merge(pull(al, it, clone, add), it.Close())
	if err == nil {
		return nil
	}
	logging.Debug(context.Background(), "draining the iterator failed, releasing the inserted elements",
		logging.Field("container", name),
		logging.Field("clone", clone),
		logging.ErrField(err))
	unwind()
	return err
}

func pull[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool, add func(T) bool) error {
	if alloc.IsNil(al) {
		return alloc.ErrNilAllocator
	}
	if !it.Valid() {
		return iterators.ErrInvalidUpstream.Wrap(it.Err())
	}
	if clone && !al.CanCopy() {
		return alloc.ErrNoCopyFunc
	}
	for it.HasNext() {
		v, ok := it.Get()
		if !ok {
			if err := it.Err(); err != nil {
				return err
			}
			return ErrElementUnavailable
		}
		if clone {
			c, err := al.Copy(v)
			if err != nil {
				return err
			}
			v = c
		}
		if !add(v) && clone {
			al.Free(v)
		}
		if !it.Next() {
			break
		}
	}
	return it.Err()
}

// release frees the elements through the allocator, when there is one.
func release[T any](al alloc.Allocator[T], vs ...T) {
	if alloc.IsNil(al) {
		return
	}
	for _, v := range vs {
		al.Free(v)
	}
}
