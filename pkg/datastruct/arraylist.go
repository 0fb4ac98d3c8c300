package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// ArrayList is a growable, index addressable list backed by a slice.
type ArrayList[T any] struct {
	al    alloc.Allocator[T]
	items []T
}

var _ Reversible[any] = (*ArrayList[any])(nil)

func NewArrayList[T any](al alloc.Allocator[T]) *ArrayList[T] {
	return &ArrayList[T]{al: al}
}

// FromArrayList drains the iterator into a new ArrayList, keeping the iteration order.
// With clone, the stored elements are copies made by the allocator.
func FromArrayList[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*ArrayList[T], error) {
	l := NewArrayList(al)
	err := fill("arraylist", al, it, clone,
		func(v T) bool { l.Append(v); return true },
		func() {
			if clone {
				l.Clear()
			}
		})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (l *ArrayList[T]) Append(vs ...T) {
	l.items = append(l.items, vs...)
}

// Insert puts v at index, shifting the following elements up.
// Inserting at Len appends.
func (l *ArrayList[T]) Insert(index int, v T) error {
	if index < 0 || len(l.items) < index {
		return ErrIndexOutOfRange.F("insert at %d, length %d", index, len(l.items))
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
	return nil
}

func (l *ArrayList[T]) Get(index int) (T, bool) {
	if index < 0 || len(l.items) <= index {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

// Set replaces the element at index, the replaced element is released.
func (l *ArrayList[T]) Set(index int, v T) error {
	if index < 0 || len(l.items) <= index {
		return ErrIndexOutOfRange.F("set at %d, length %d", index, len(l.items))
	}
	release(l.al, l.items[index])
	l.items[index] = v
	return nil
}

// Remove takes the element at index out of the list and hands it over to the caller.
func (l *ArrayList[T]) Remove(index int) (T, bool) {
	v, ok := l.Get(index)
	if !ok {
		return v, false
	}
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, true
}

func (l *ArrayList[T]) Len() int {
	return len(l.items)
}

func (l *ArrayList[T]) Clear() {
	release(l.al, l.items...)
	clear(l.items)
	l.items = l.items[:0]
}

func (l *ArrayList[T]) Iter() iterators.Iterator[T] {
	return newIndexIter[T](l.al, "arraylist.iter", l.Len, func(i int) T { return l.items[i] })
}

func (l *ArrayList[T]) IterReverse() iterators.Iterator[T] {
	return newIndexIter[T](l.al, "arraylist.iter", l.Len, func(i int) T { return l.items[len(l.items)-1-i] })
}
