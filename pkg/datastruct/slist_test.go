package datastruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/datastruct"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/iteratorcontracts"
)

func TestSinglyLinkedList(t *testing.T) {
	l := datastruct.NewSinglyLinkedList[int](alloc.Of[int]())
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	require.Equal(t, 3, l.Len())
	require.Equal(t, []int{1, 2, 3}, toSlice(t, l.Iter()))

	v, ok := l.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = l.PopFront()
	require.True(t, ok)
	require.Equal(t, 2, v)
	v, ok = l.PopFront()
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = l.PopFront()
	require.False(t, ok)
	require.Equal(t, 0, l.Len())

	l.PushBack(4)
	require.Equal(t, []int{4}, toSlice(t, l.Iter()))
}

func TestSinglyLinkedList_iteratesForwardOnly(t *testing.T) {
	l := datastruct.NewSinglyLinkedList[int](alloc.Of[int]())
	l.PushBack(1)
	l.PushBack(2)

	it := l.Iter()
	defer it.Close()
	require.True(t, it.Next())
	require.True(t, it.Next())
	require.False(t, it.HasPrev())
	require.False(t, it.Prev())

	it.Reset()
	v, ok := it.Get()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestSinglyLinkedList_implementsIterator(t *testing.T) {
	iteratorcontracts.Iterator[int](func(tb testing.TB) iterators.Iterator[int] {
		l := datastruct.NewSinglyLinkedList[int](alloc.Of[int]())
		l.PushBack(1)
		l.PushBack(2)
		return l.Iter()
	}).Test(t)
	iteratorcontracts.Accounted[int](func(tb testing.TB, a alloc.Arena) iterators.Iterator[int] {
		l := datastruct.NewSinglyLinkedList[int](withArena[int](a))
		l.PushBack(1)
		return l.Iter()
	}).Test(t)
}
