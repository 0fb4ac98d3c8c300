package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// HashSet is a set of comparable elements that remembers the insertion order.
// Iteration follows the insertion order, and is forward only.
type HashSet[T comparable] struct {
	al    alloc.Allocator[T]
	vs    map[T]*setElem[T]
	first *setElem[T]
	last  *setElem[T]
}

var _ Iterable[int] = (*HashSet[int])(nil)

type setElem[T comparable] struct {
	data T
	prev *setElem[T]
	next *setElem[T]
}

func NewHashSet[T comparable](al alloc.Allocator[T]) *HashSet[T] {
	return &HashSet[T]{al: al}
}

// FromHashSet drains the iterator into a new HashSet.
// Duplicates are kept only once, at their first position, and their clones are released right away.
func FromHashSet[T comparable](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*HashSet[T], error) {
	s := NewHashSet(al)
	err := fill("hashset", al, it, clone, s.Add, func() {
		if clone {
			s.Clear()
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Add puts v into the set, and reports false when it was already there.
// A rejected element still belongs to the caller.
func (s *HashSet[T]) Add(v T) bool {
	if s.vs == nil {
		s.vs = make(map[T]*setElem[T])
	}
	if _, ok := s.vs[v]; ok {
		return false
	}
	e := &setElem[T]{data: v, prev: s.last}
	if s.last != nil {
		s.last.next = e
	} else {
		s.first = e
	}
	s.last = e
	s.vs[v] = e
	return true
}

func (s *HashSet[T]) Has(v T) bool {
	_, ok := s.vs[v]
	return ok
}

// Remove takes the element out of the set and hands the stored value over to the caller.
func (s *HashSet[T]) Remove(v T) (T, bool) {
	e, ok := s.vs[v]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.vs, v)
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.first = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.last = e.prev
	}
	e.prev, e.next = nil, nil
	return e.data, true
}

func (s *HashSet[T]) Len() int {
	return len(s.vs)
}

func (s *HashSet[T]) Clear() {
	for e := s.first; e != nil; {
		next := e.next
		release(s.al, e.data)
		e.prev, e.next = nil, nil
		e = next
	}
	clear(s.vs)
	s.first, s.last = nil, nil
}

func (s *HashSet[T]) Iter() iterators.Iterator[T] {
	return newNodeIter(s.al, "hashset.iter", nodeWalk[T, setElem[T]]{
		First: func() *setElem[T] { return s.first },
		Last:  func() *setElem[T] { return s.last },
		Succ:  func(e *setElem[T]) *setElem[T] { return e.next },
		Value: func(e *setElem[T]) T { return e.data },
	})
}
