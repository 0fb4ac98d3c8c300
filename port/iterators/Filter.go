package iterators

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/option"
)

// Filter yields the elements of the upstream iterator that satisfy the predicate, in their original order.
// Non matching elements are skipped eagerly,
// so the visible position is always on a matching element or at the end.
// The yielded elements are passed through and still belong to the upstream,
// unless FreeRejected hands the ownership of the upstream elements to Filter.
func Filter[T any](a alloc.Arena, iter Iterator[T], filter func(T) bool, opts ...FilterOption[T]) Iterator[T] {
	if filter == nil {
		return Invalid[T](ErrNilFunc, iter)
	}
	c := option.ToConfig[FilterConfig[T]](opts)
	if c.FreeRejected && alloc.IsNil(c.Allocator) {
		return Invalid[T](ErrNilAllocator, iter)
	}
	lc, err := Open(a, "filter", iter)
	if err != nil {
		return Invalid[T](err, iter)
	}
	return &filterIter[T]{Lifecycle: lc, Iterator: iter, Filter: filter, Config: c}
}

type FilterOption[T any] option.Option[FilterConfig[T]]

type FilterConfig[T any] struct {
	// FreeRejected makes Filter the owner of every upstream element it looks at.
	// Rejected elements are released through Allocator,
	// and so is a matching element that was skipped with Next or Close without being taken with Get.
	FreeRejected bool
	Allocator    alloc.Allocator[T]
}

// FreeRejected makes Filter release the upstream elements it does not hand over.
// Use it over upstreams that yield owned elements, like Copy or an allocating Transform.
func FreeRejected[T any](al alloc.Allocator[T]) FilterOption[T] {
	return option.Func[FilterConfig[T]](func(c *FilterConfig[T]) {
		c.FreeRejected = true
		c.Allocator = al
	})
}

type filterIter[T any] struct {
	Lifecycle
	forward
	Iterator Iterator[T]
	Filter   func(T) bool
	Config   FilterConfig[T]

	held    T
	holding bool
	taken   bool
}

func (i *filterIter[T]) Close() error {
	if !i.Release() {
		return nil
	}
	i.drop()
	return i.Iterator.Close()
}

func (i *filterIter[T]) Err() error {
	return i.Iterator.Err()
}

func (i *filterIter[T]) HasNext() bool {
	_, ok := i.seek()
	return ok
}

func (i *filterIter[T]) Get() (T, bool) {
	v, ok := i.seek()
	if ok && i.holding {
		i.taken = true
	}
	return v, ok
}

func (i *filterIter[T]) Next() bool {
	if _, ok := i.seek(); !ok {
		return false
	}
	i.drop()
	return i.Iterator.Next()
}

func (i *filterIter[T]) Reset() {
	if i.Closed() {
		return
	}
	i.drop()
	i.Iterator.Reset()
}

// seek moves the upstream to the next matching element.
func (i *filterIter[T]) seek() (T, bool) {
	var zero T
	if i.Closed() {
		return zero, false
	}
	if i.holding {
		return i.held, true
	}
	for i.Iterator.HasNext() {
		v, ok := i.Iterator.Get()
		if !ok {
			return zero, false
		}
		if i.Filter(v) {
			if i.Config.FreeRejected {
				i.held, i.holding, i.taken = v, true, false
			}
			return v, true
		}
		if i.Config.FreeRejected {
			i.Config.Allocator.Free(v)
		}
		if !i.Iterator.Next() {
			break
		}
	}
	return zero, false
}

// drop forgets the held element, releasing it when it was never taken.
func (i *filterIter[T]) drop() {
	if !i.holding {
		return
	}
	if !i.taken {
		i.Config.Allocator.Free(i.held)
	}
	var zero T
	i.held, i.holding, i.taken = zero, false, false
}
