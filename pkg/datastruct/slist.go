package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// SinglyLinkedList is a forward linked list, it can only be iterated from front to back.
type SinglyLinkedList[T any] struct {
	al     alloc.Allocator[T]
	head   *slElem[T]
	tail   *slElem[T]
	length int
}

var _ Iterable[any] = (*SinglyLinkedList[any])(nil)

type slElem[T any] struct {
	data T
	next *slElem[T]
}

func NewSinglyLinkedList[T any](al alloc.Allocator[T]) *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{al: al}
}

// FromSinglyLinkedList drains the iterator into a new SinglyLinkedList, keeping the iteration order.
func FromSinglyLinkedList[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*SinglyLinkedList[T], error) {
	l := NewSinglyLinkedList(al)
	err := fill("slist", al, it, clone,
		func(v T) bool { l.PushBack(v); return true },
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

func (l *SinglyLinkedList[T]) PushFront(v T) {
	l.head = &slElem[T]{data: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.length++
}

func (l *SinglyLinkedList[T]) PushBack(v T) {
	e := &slElem[T]{data: v}
	if l.tail == nil {
		l.head, l.tail = e, e
	} else {
		l.tail.next = e
		l.tail = e
	}
	l.length++
}

// PopFront takes the first element out of the list.
func (l *SinglyLinkedList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	e.next = nil
	l.length--
	return e.data, true
}

func (l *SinglyLinkedList[T]) Len() int { return l.length }

func (l *SinglyLinkedList[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		release(l.al, e.data)
		e.next = nil
		e = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

func (l *SinglyLinkedList[T]) Iter() iterators.Iterator[T] {
	return newNodeIter(l.al, "slist.iter", nodeWalk[T, slElem[T]]{
		First: func() *slElem[T] { return l.head },
		Last:  func() *slElem[T] { return l.tail },
		Succ:  func(e *slElem[T]) *slElem[T] { return e.next },
		Value: func(e *slElem[T]) T { return e.data },
	})
}
