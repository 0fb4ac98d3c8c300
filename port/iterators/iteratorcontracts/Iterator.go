package iteratorcontracts

import (
	"context"
	"testing"
	"time"

	"github.com/szmathias/dscontainers/port/iterators"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Iterator is the contract of a valid, finite and non empty iterator.
type Iterator[V any] func(tb testing.TB) iterators.Iterator[V]

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterator", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			return c(t)
		})

		s.Then("it is valid", func(t *testcase.T) {
			t.Must.True(subject.Get(t).Valid())
			t.Must.NoError(subject.Get(t).Err())
		})

		s.Then("values can be collected from the iterator", func(t *testcase.T) {
			vs, err := iterators.Collect[V](subject.Get(t))
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})

		s.Then("HasNext does not move the position", func(t *testcase.T) {
			sub := subject.Get(t)
			for i, n := 0, t.Random.IntB(2, 5); i < n; i++ {
				t.Must.True(sub.HasNext())
			}
			vs, err := iterators.Collect[V](sub)
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})

		s.Then("Get returns the same element until Next is called", func(t *testcase.T) {
			sub := subject.Get(t)
			v1, ok := sub.Get()
			t.Must.True(ok)
			v2, ok := sub.Get()
			t.Must.True(ok)
			t.Must.Equal(v1, v2)
		})

		s.Then("the number of successful Next calls equals the number of elements", func(t *testcase.T) {
			sub := subject.Get(t)
			var elements, moves int
			for sub.HasNext() {
				_, ok := sub.Get()
				t.Must.True(ok)
				elements++
				if !sub.Next() {
					break
				}
				moves++
			}
			t.Must.NotEqual(0, elements)
			t.Must.Equal(elements, moves)
			t.Must.NoError(sub.Close())
		})

		s.Then("once exhausted, Get and Next report nothing", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.HasNext() && sub.Next() {
			}
			_, ok := sub.Get()
			t.Must.False(ok)
			t.Must.False(sub.Next())
			t.Must.NoError(sub.Err())
			t.Must.NoError(sub.Close())
		})

		s.Then("closing the iterator is possible, even multiple times, without an issue", func(t *testcase.T) {
			sub := subject.Get(t)
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.NoError(sub.Close())
				t.Must.NoError(sub.Err())
			}
		})

		s.Test("Iterator.Err() method is non-blocking similarly to context.Context.Err()", func(t *testcase.T) {
			const timeout = 250 * time.Millisecond
			assert.Within(t, timeout, func(ctx context.Context) {
				assert.NoError(t, subject.Get(t).Err())
			})

			_, err := iterators.Collect(subject.Get(t))
			assert.NoError(t, err)

			assert.NoError(t, subject.Get(t).Close())

			assert.Within(t, timeout, func(ctx context.Context) {
				assert.NoError(t, subject.Get(t).Err())
			})
		})

		s.When("iterator is closed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Must.NoError(subject.Get(t).Close())
			})

			s.Then("no more value is iterated", func(t *testcase.T) {
				t.Must.False(subject.Get(t).HasNext())
				vs, err := iterators.Collect(subject.Get(t))
				t.Must.NoError(err)
				t.Must.Empty(vs)
			})

			s.Then("moving backwards is not possible either", func(t *testcase.T) {
				t.Must.False(subject.Get(t).HasPrev())
				t.Must.False(subject.Get(t).Prev())
			})
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
