package datastruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/datastruct"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/iteratorcontracts"
)

func TestQueue(t *testing.T) {
	q := datastruct.NewQueue[int](alloc.Of[int]())
	_, ok := q.Peek()
	require.False(t, ok)
	_, ok = q.Dequeue()
	require.False(t, ok)

	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	v, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, []int{1, 2, 3}, toSlice(t, q.Iter()))
	require.Equal(t, []int{3, 2, 1}, toSlice(t, q.IterReverse()))

	v, ok = q.Dequeue()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, q.Len())
}

func TestQueue_wrapsAroundTheRingBuffer(t *testing.T) {
	q := datastruct.NewQueue[int](alloc.Of[int]())
	var expected []int
	next := 0
	// enqueue and dequeue in an uneven rhythm, so the head walks around the buffer and the buffer grows and shrinks
	for round := 0; round < 50; round++ {
		for i := 0; i < round%7+1; i++ {
			q.Enqueue(next)
			expected = append(expected, next)
			next++
		}
		for i := 0; i < round%5; i++ {
			v, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, expected[0], v)
			expected = expected[1:]
		}
		require.Equal(t, len(expected), q.Len())
		require.Equal(t, expected, toSlice(t, q.Iter()))
	}
	for len(expected) > 0 {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, expected[0], v)
		expected = expected[1:]
	}
	require.Equal(t, 0, q.Len())
}

func TestQueue_clearReleasesElements(t *testing.T) {
	var freed []int
	q := datastruct.NewQueue[int](alloc.Funcs[int]{FreeFunc: func(v int) { freed = append(freed, v) }})
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 4; i++ {
		_, _ = q.Dequeue()
	}
	q.Clear()
	require.Equal(t, []int{4, 5, 6, 7, 8, 9}, freed)
	require.Equal(t, 0, q.Len())
}

func TestQueue_implementsIterator(t *testing.T) {
	iteratorcontracts.Bidirectional[int](func(tb testing.TB) iterators.Iterator[int] {
		q := datastruct.NewQueue[int](alloc.Of[int]())
		for i := 0; i < 12; i++ {
			q.Enqueue(i)
		}
		_, _ = q.Dequeue()
		return q.Iter()
	}).Test(t)
	iteratorcontracts.Accounted[int](func(tb testing.TB, a alloc.Arena) iterators.Iterator[int] {
		q := datastruct.NewQueue[int](withArena[int](a))
		q.Enqueue(1)
		return q.IterReverse()
	}).Test(t)
}
