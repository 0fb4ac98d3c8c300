package ranges_test

import (
	"testing"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/iteratorcontracts"
	"github.com/szmathias/dscontainers/port/iterators/ranges"
	"go.llib.dev/testcase"
)

func TestRepeat(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		value = testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
		count = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntB(1, 10) })
	)
	subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[string] {
		return ranges.Repeat(alloc.Default, value.Get(t), count.Get(t))
	})

	s.Then("the value is yielded count times", func(t *testcase.T) {
		vs, err := iterators.Collect(subject.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(count.Get(t), len(vs))
		for _, v := range vs {
			t.Must.Equal(value.Get(t), v)
		}
	})

	s.Then("it can not move backwards", func(t *testcase.T) {
		t.Must.True(subject.Get(t).Next())
		t.Must.False(subject.Get(t).HasPrev())
		t.Must.False(subject.Get(t).Prev())
	})

	s.Then("Reset restores the count", func(t *testcase.T) {
		sub := subject.Get(t)
		for sub.Next() {
		}
		t.Must.False(sub.HasNext())
		sub.Reset()
		total, err := iterators.Count(sub)
		t.Must.NoError(err)
		t.Must.Equal(count.Get(t), total)
	})

	s.When("count is zero", func(s *testcase.Spec) {
		count.LetValue(s, 0)

		s.Then("it is valid and empty", func(t *testcase.T) {
			t.Must.True(subject.Get(t).Valid())
			t.Must.False(subject.Get(t).HasNext())
		})
	})

	s.When("count is unbounded", func(s *testcase.Spec) {
		count.LetValue(s, ranges.Unbounded)

		s.Then("it keeps yielding the value", func(t *testcase.T) {
			n := t.Random.IntB(100, 1000)
			vs, err := iterators.Collect(iterators.Take(alloc.Default, subject.Get(t), n))
			t.Must.NoError(err)
			t.Must.Equal(n, len(vs))
		})
	})
}

func TestRepeat_implementsIterator(t *testing.T) {
	iteratorcontracts.Iterator[int](func(tb testing.TB) iterators.Iterator[int] {
		t := testcase.ToT(&tb)
		return ranges.Repeat(alloc.Default, t.Random.Int(), t.Random.IntB(1, 7))
	}).Test(t)

	iteratorcontracts.Accounted[int](func(tb testing.TB, a alloc.Arena) iterators.Iterator[int] {
		return ranges.Repeat(a, 42, 3)
	}).Test(t)
}
