package iteratorcontracts

import (
	"testing"

	"github.com/szmathias/dscontainers/port/iterators"
	"go.llib.dev/testcase"
)

// Bidirectional is the contract of a finite, non empty iterator that can move backwards and can be reset.
type Bidirectional[V any] func(tb testing.TB) iterators.Iterator[V]

func (c Bidirectional[V]) Spec(s *testcase.Spec) {
	Iterator[V](c).Spec(s)

	s.Describe("it can move backwards", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			it := c(t)
			t.Defer(it.Close)
			return it
		})
		forward := func(t *testcase.T) []V {
			var vs []V
			sub := subject.Get(t)
			for sub.HasNext() {
				v, ok := sub.Get()
				t.Must.True(ok)
				vs = append(vs, v)
				t.Must.True(sub.Next())
			}
			return vs
		}

		s.Then("nothing is behind the initial position", func(t *testcase.T) {
			t.Must.False(subject.Get(t).HasPrev())
			t.Must.False(subject.Get(t).Prev())
		})

		s.Then("Prev walks the elements back in reverse order", func(t *testcase.T) {
			vs := forward(t)
			sub := subject.Get(t)

			var back []V
			for sub.HasPrev() {
				t.Must.True(sub.Prev())
				v, ok := sub.Get()
				t.Must.True(ok)
				back = append([]V{v}, back...)
			}
			t.Must.Equal(vs, back)
		})

		s.Then("Reset reproduces the same sequence", func(t *testcase.T) {
			vs := forward(t)
			subject.Get(t).Reset()
			t.Must.Equal(vs, forward(t))
		})
	})
}

func (c Bidirectional[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}
