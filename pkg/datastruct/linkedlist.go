package datastruct

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
)

// LinkedList is a doubly linked list.
type LinkedList[T any] struct {
	al     alloc.Allocator[T]
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

var _ Reversible[any] = (*LinkedList[any])(nil)

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func NewLinkedList[T any](al alloc.Allocator[T]) *LinkedList[T] {
	return &LinkedList[T]{al: al}
}

// FromLinkedList drains the iterator into a new LinkedList, keeping the iteration order.
func FromLinkedList[T any](al alloc.Allocator[T], it iterators.Iterator[T], clone bool) (*LinkedList[T], error) {
	ll := NewLinkedList(al)
	err := fill("linkedlist", al, it, clone,
		func(v T) bool { ll.append(v); return true },
		func() {
			if clone {
				ll.Clear()
			}
		})
	if err != nil {
		return nil, err
	}
	return ll, nil
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds the elements to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

// Shift takes the first element out of the list.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.unlink(first)
	return first.data, true
}

// Pop takes the last element out of the list.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail == nil {
		var zero T
		return zero, false
	}
	last := ll.tail
	ll.unlink(last)
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	// walk from the closer end
	if index < ll.length/2 {
		e := ll.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e.data, true
	}
	e := ll.tail
	for i := ll.length - 1; index < i; i-- {
		e = e.prev
	}
	return e.data, true
}

func (ll *LinkedList[T]) Clear() {
	for e := ll.head; e != nil; {
		next := e.next
		release(ll.al, e.data)
		e.prev, e.next = nil, nil
		e = next
	}
	ll.head, ll.tail, ll.length = nil, nil, 0
}

func (ll *LinkedList[T]) Iter() iterators.Iterator[T] {
	return newNodeIter(ll.al, "linkedlist.iter", ll.walk())
}

func (ll *LinkedList[T]) IterReverse() iterators.Iterator[T] {
	return newNodeIter(ll.al, "linkedlist.iter", ll.walk().reversed())
}

func (ll *LinkedList[T]) walk() nodeWalk[T, llElem[T]] {
	return nodeWalk[T, llElem[T]]{
		First: func() *llElem[T] { return ll.head },
		Last:  func() *llElem[T] { return ll.tail },
		Succ:  func(e *llElem[T]) *llElem[T] { return e.next },
		Pred:  func(e *llElem[T]) *llElem[T] { return e.prev },
		Value: func(e *llElem[T]) T { return e.data },
	}
}

// unlink removes the element and detaches it, so iterators standing on it stop there.
func (ll *LinkedList[T]) unlink(e *llElem[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		ll.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		ll.tail = e.prev
	}
	e.prev, e.next = nil, nil
	ll.length--
}
