package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// Stack is a LIFO stack on a slice.
type Stack[T any] struct {
	al    alloc.Allocator[T]
	items []T
}

var _ Reversible[any] = (*Stack[any])(nil)

func NewStack[T any](al alloc.Allocator[T]) *Stack[T] {
	return &Stack[T]{al: al}
}

// FromStack drains the iterator into a new Stack by pushing every element,
// so the last element of the iteration ends up on the top.
func FromStack[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*Stack[T], error) {
	s := NewStack(al)
	err := fill("stack", al, it, clone,
		func(v T) bool { s.Push(v); return true },
		func() {
			if clone {
				s.Clear()
			}
		})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.IsEmpty() {
		return zero, false
	}
	index := len(s.items) - 1
	element := s.items[index]
	s.items[index] = zero
	s.items = s.items[:index]
	return element, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Clear() {
	release(s.al, s.items...)
	clear(s.items)
	s.items = s.items[:0]
}

// Iter walks the stack from the top to the bottom, in the order Pop would return the elements.
func (s *Stack[T]) Iter() iterators.Iterator[T] {
	return newIndexIter[T](s.al, "stack.iter", s.Len, func(i int) T { return s.items[len(s.items)-1-i] })
}

// IterReverse walks the stack from the bottom to the top.
func (s *Stack[T]) IterReverse() iterators.Iterator[T] {
	return newIndexIter[T](s.al, "stack.iter", s.Len, func(i int) T { return s.items[i] })
}
