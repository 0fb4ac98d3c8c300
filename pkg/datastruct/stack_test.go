package datastruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/datastruct"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/iteratorcontracts"
)

func TestStack(t *testing.T) {
	s := datastruct.NewStack[string](alloc.Of[string]())
	require.True(t, s.IsEmpty())
	_, ok := s.Pop()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)

	s.Push("a")
	s.Push("b")
	s.Push("c")
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"c", "b", "a"}, toSlice(t, s.Iter()))
	require.Equal(t, []string{"a", "b", "c"}, toSlice(t, s.IterReverse()))

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "c", v)

	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, "c", v)
	require.Equal(t, []string{"b", "a"}, toSlice(t, s.Iter()))
}

func TestStack_iterationFollowsPopOrder(t *testing.T) {
	s := datastruct.NewStack[int](alloc.Of[int]())
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	iterated := toSlice(t, s.Iter())

	var popped []int
	for !s.IsEmpty() {
		v, _ := s.Pop()
		popped = append(popped, v)
	}
	require.Equal(t, popped, iterated)
}

func TestStack_implementsIterator(t *testing.T) {
	iteratorcontracts.Bidirectional[int](func(tb testing.TB) iterators.Iterator[int] {
		s := datastruct.NewStack[int](alloc.Of[int]())
		s.Push(1)
		s.Push(2)
		return s.Iter()
	}).Test(t)
	iteratorcontracts.Accounted[int](func(tb testing.TB, a alloc.Arena) iterators.Iterator[int] {
		s := datastruct.NewStack[int](withArena[int](a))
		s.Push(1)
		return s.Iter()
	}).Test(t)
}
