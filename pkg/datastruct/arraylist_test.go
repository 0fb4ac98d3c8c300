package datastruct_test

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/require"
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/datastruct"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/iteratorcontracts"
	"github.com/szmathias/dscontainers/port/iterators/ranges"
	"go.llib.dev/testcase/random"
)

func TestArrayList(t *testing.T) {
	l := datastruct.NewArrayList[string](alloc.Of[string]())
	l.Append("b", "d")
	require.Nil(t, l.Insert(0, "a"))
	require.Nil(t, l.Insert(2, "c"))
	require.Nil(t, l.Insert(4, "e"))
	require.Equal(t, 5, l.Len())
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, toSlice(t, l.Iter()))
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, toSlice(t, l.IterReverse()))

	err := l.Insert(6, "x")
	require.True(t, errors.Is(err, datastruct.ErrIndexOutOfRange))
	require.True(t, errors.Is(l.Set(-1, "x"), datastruct.ErrIndexOutOfRange))

	v, ok := l.Get(2)
	require.True(t, ok)
	require.Equal(t, "c", v)
	_, ok = l.Get(5)
	require.False(t, ok)

	require.Nil(t, l.Set(2, "C"))
	v, ok = l.Remove(2)
	require.True(t, ok)
	require.Equal(t, "C", v)
	require.Equal(t, []string{"a", "b", "d", "e"}, toSlice(t, l.Iter()))

	_, ok = l.Remove(4)
	require.False(t, ok)

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, toSlice(t, l.Iter()))
}

func TestArrayList_releasesOwnedElements(t *testing.T) {
	var freed []int
	l := datastruct.NewArrayList[int](alloc.Funcs[int]{FreeFunc: func(v int) { freed = append(freed, v) }})
	l.Append(1, 2, 3)

	require.Nil(t, l.Set(0, 10))
	require.Equal(t, []int{1}, freed)

	_, _ = l.Remove(1)
	require.Equal(t, []int{1}, freed, "removed elements belong to the caller")

	l.Clear()
	require.Equal(t, []int{1, 10, 3}, freed)
}

func TestArrayList_iterationIsALiveView(t *testing.T) {
	l := datastruct.NewArrayList[int](alloc.Of[int]())
	l.Append(1, 2, 3)

	it := l.Iter()
	defer it.Close()

	require.True(t, it.Next())
	l.Append(4)
	_, _ = l.Remove(0)

	var got []int
	for it.HasNext() {
		v, _ := it.Get()
		got = append(got, v)
		it.Next()
	}
	require.Equal(t, []int{3, 4}, got)

	l.Clear()
	require.False(t, it.HasPrev())
	require.False(t, it.Prev())
}

func TestFromArrayList(t *testing.T) {
	l, err := datastruct.FromArrayList[int](alloc.Of[int](), ranges.Range(alloc.Default, 0, 5, 1), false)
	require.Nil(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, toSlice(t, l.Iter()))
}

func TestArrayList_implementsIterator(t *testing.T) {
	iteratorcontracts.Bidirectional[int](func(tb testing.TB) iterators.Iterator[int] {
		l := datastruct.NewArrayList[int](alloc.Of[int]())
		l.Append(1, 2, 3)
		return l.Iter()
	}).Test(t)
	iteratorcontracts.Bidirectional[int](func(tb testing.TB) iterators.Iterator[int] {
		l := datastruct.NewArrayList[int](alloc.Of[int]())
		l.Append(1, 2, 3)
		return l.IterReverse()
	}).Test(t)
	iteratorcontracts.Accounted[int](func(tb testing.TB, a alloc.Arena) iterators.Iterator[int] {
		l := datastruct.NewArrayList[int](withArena[int](a))
		l.Append(1, 2, 3)
		return l.Iter()
	}).Test(t)
}

func TestArrayList_matchesGodsArrayList(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	l := datastruct.NewArrayList[int](alloc.Of[int]())
	oracle := arraylist.New()
	for i := 0; i < 500; i++ {
		switch op := rnd.IntBetween(0, 3); {
		case op == 0 || l.Len() == 0:
			v := rnd.Int()
			l.Append(v)
			oracle.Add(v)
		case op == 1:
			index, v := rnd.IntBetween(0, l.Len()), rnd.Int()
			require.Nil(t, l.Insert(index, v))
			oracle.Insert(index, v)
		case op == 2:
			index, v := rnd.IntBetween(0, l.Len()-1), rnd.Int()
			require.Nil(t, l.Set(index, v))
			oracle.Remove(index)
			oracle.Insert(index, v)
		default:
			index := rnd.IntBetween(0, l.Len()-1)
			got, ok := l.Remove(index)
			require.True(t, ok)
			exp, _ := oracle.Get(index)
			require.Equal(t, exp, got)
			oracle.Remove(index)
		}
		require.Equal(t, oracle.Size(), l.Len())
	}
	var expected []int
	for _, v := range oracle.Values() {
		expected = append(expected, v.(int))
	}
	require.Equal(t, expected, toSlice(t, l.Iter()))
}
