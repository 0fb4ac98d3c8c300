package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// indexIter walks an index addressable container.
// The bounds are checked against Len on every call.
type indexIter[T any] struct {
	iterators.Lifecycle
	Len func() int
	At  func(index int) T

	pos int
}

func newIndexIter[T any](a alloc.Arena, kind string, length func() int, at func(int) T) iterators.Iterator[T] {
	lc, err := iterators.Open(a, kind)
	if err != nil {
		return iterators.Invalid[T](err)
	}
	return &indexIter[T]{Lifecycle: lc, Len: length, At: at}
}

func (i *indexIter[T]) Close() error {
	i.Release()
	return nil
}

func (i *indexIter[T]) Err() error { return nil }

func (i *indexIter[T]) HasNext() bool {
	return !i.Closed() && i.pos < i.Len()
}

func (i *indexIter[T]) Get() (T, bool) {
	if !i.HasNext() {
		var zero T
		return zero, false
	}
	return i.At(i.pos), true
}

func (i *indexIter[T]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.pos++
	return true
}

func (i *indexIter[T]) HasPrev() bool {
	return !i.Closed() && 0 < i.pos && i.pos-1 < i.Len()
}

func (i *indexIter[T]) Prev() bool {
	if !i.HasPrev() {
		return false
	}
	i.pos--
	return true
}

func (i *indexIter[T]) Reset() { i.pos = 0 }

// nodeIter walks a node based container.
// Before the first Next, the position follows the container's first node,
// so elements added to an empty container are still observed.
// A nil current node after moving means the position is past the end.
type nodeIter[T, N any] struct {
	iterators.Lifecycle
	nodeWalk[T, N]

	cur   *N
	moved bool
}

// nodeWalk tells how to move between the nodes of a container.
// Pred is nil for containers that can only be walked forward.
type nodeWalk[T, N any] struct {
	First, Last func() *N
	Succ, Pred  func(*N) *N
	Value       func(*N) T
}

func newNodeIter[T, N any](a alloc.Arena, kind string, w nodeWalk[T, N]) iterators.Iterator[T] {
	lc, err := iterators.Open(a, kind)
	if err != nil {
		return iterators.Invalid[T](err)
	}
	return &nodeIter[T, N]{Lifecycle: lc, nodeWalk: w}
}

// reversed walks the same nodes in the opposite direction.
func (w nodeWalk[T, N]) reversed() nodeWalk[T, N] {
	return nodeWalk[T, N]{First: w.Last, Last: w.First, Succ: w.Pred, Pred: w.Succ, Value: w.Value}
}

func (i *nodeIter[T, N]) Close() error {
	i.Release()
	i.cur = nil
	return nil
}

func (i *nodeIter[T, N]) Err() error { return nil }

func (i *nodeIter[T, N]) current() *N {
	if i.Closed() {
		return nil
	}
	if !i.moved {
		return i.First()
	}
	return i.cur
}

func (i *nodeIter[T, N]) HasNext() bool {
	return i.current() != nil
}

func (i *nodeIter[T, N]) Get() (T, bool) {
	n := i.current()
	if n == nil {
		var zero T
		return zero, false
	}
	return i.Value(n), true
}

func (i *nodeIter[T, N]) Next() bool {
	n := i.current()
	if n == nil {
		return false
	}
	i.cur = i.Succ(n)
	i.moved = true
	return true
}

func (i *nodeIter[T, N]) HasPrev() bool {
	return i.prev() != nil
}

func (i *nodeIter[T, N]) Prev() bool {
	p := i.prev()
	if p == nil {
		return false
	}
	i.cur = p
	return true
}

func (i *nodeIter[T, N]) prev() *N {
	if i.Closed() || !i.moved || i.Pred == nil {
		return nil
	}
	if i.cur == nil {
		return i.Last()
	}
	return i.Pred(i.cur)
}

func (i *nodeIter[T, N]) Reset() {
	i.cur = nil
	i.moved = false
}
