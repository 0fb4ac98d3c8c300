package iterators

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/errorkit"
)

// Pair holds the current elements of two zipped iterators.
// Both elements are borrowed from their upstream.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Zip walks two iterators in lockstep and yields their elements in pairs.
// It stops at the shorter one: once either side is exhausted, the zip stays exhausted,
// even if the other side has elements left.
// Zip can not move backwards or be reset.
func Zip[L, R any](a alloc.Arena, left Iterator[L], right Iterator[R]) Iterator[Pair[L, R]] {
	lc, err := Open(a, "zip", left, right)
	if err != nil {
		return Invalid[Pair[L, R]](err, left, right)
	}
	return &zipIter[L, R]{Lifecycle: lc, Left: left, Right: right}
}

type zipIter[L, R any] struct {
	Lifecycle
	forward
	Left  Iterator[L]
	Right Iterator[R]

	pair   Pair[L, R]
	cached bool
	done   bool
}

func (i *zipIter[L, R]) Close() error {
	if !i.Release() {
		return nil
	}
	i.drop()
	return errorkit.Merge(i.Left.Close(), i.Right.Close())
}

func (i *zipIter[L, R]) Err() error {
	return errorkit.Merge(i.Left.Err(), i.Right.Err())
}

func (i *zipIter[L, R]) HasNext() bool {
	if i.Closed() || i.done {
		return false
	}
	if !i.Left.HasNext() || !i.Right.HasNext() {
		i.done = true
		return false
	}
	return true
}

func (i *zipIter[L, R]) Get() (Pair[L, R], bool) {
	if i.cached {
		return i.pair, true
	}
	if !i.HasNext() {
		return Pair[L, R]{}, false
	}
	l, ok := i.Left.Get()
	if !ok {
		return Pair[L, R]{}, false
	}
	r, ok := i.Right.Get()
	if !ok {
		return Pair[L, R]{}, false
	}
	i.pair, i.cached = Pair[L, R]{Left: l, Right: r}, true
	return i.pair, true
}

func (i *zipIter[L, R]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.drop()
	lok := i.Left.Next()
	rok := i.Right.Next()
	if !lok || !rok {
		i.done = true
		return false
	}
	return true
}

func (i *zipIter[L, R]) Reset() {}

func (i *zipIter[L, R]) drop() {
	i.pair, i.cached = Pair[L, R]{}, false
}
