package iteratorcontracts

import (
	"testing"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
	"go.llib.dev/testcase"
)

// Accounted is the contract of an iterator that records its private state in the given Arena.
// Closing the iterator, once or many times, must leave no live state behind.
type Accounted[V any] func(tb testing.TB, a alloc.Arena) iterators.Iterator[V]

func (c Accounted[V]) Spec(s *testcase.Spec) {
	s.Describe("it accounts for its state", func(s *testcase.Spec) {
		counter := testcase.Let(s, func(t *testcase.T) *alloc.Counter[V] {
			return &alloc.Counter[V]{}
		})
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			return c(t, counter.Get(t))
		})

		s.Then("state is allocated while the iterator is open", func(t *testcase.T) {
			subject.Get(t)
			t.Must.True(0 < counter.Get(t).Live())
		})

		s.Then("closing releases every piece of state", func(t *testcase.T) {
			t.Must.NoError(subject.Get(t).Close())
			t.Must.Equal(0, counter.Get(t).Live())
		})

		s.Then("closing more than once does not release anything twice", func(t *testcase.T) {
			for i, n := 0, t.Random.IntB(2, 5); i < n; i++ {
				t.Must.NoError(subject.Get(t).Close())
			}
			for _, stat := range counter.Get(t).Stats() {
				t.Must.Equal(stat.Allocs, stat.Deallocs)
			}
		})

		s.Then("draining the iterator releases its state", func(t *testcase.T) {
			_, err := iterators.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(0, counter.Get(t).Live())
		})

		s.When("the arena refuses to allocate", func(s *testcase.Spec) {
			counter.Let(s, func(t *testcase.T) *alloc.Counter[V] {
				return &alloc.Counter[V]{Base: refusing[V]{}}
			})

			s.Then("the iterator is invalid and reports the allocation failure", func(t *testcase.T) {
				t.Must.False(subject.Get(t).Valid())
				t.Must.ErrorIs(alloc.ErrOutOfMemory, subject.Get(t).Err())
				t.Must.NoError(subject.Get(t).Close())
				t.Must.Equal(0, counter.Get(t).Live())
			})
		})
	})
}

func (c Accounted[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

type refusing[V any] struct{ alloc.Funcs[V] }

func (refusing[V]) Alloc(kind string) error { return alloc.ErrOutOfMemory.F("alloc %s", kind) }
