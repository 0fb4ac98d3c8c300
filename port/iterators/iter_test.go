package iterators_test

import (
	"testing"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func TestOpen(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		counter   = testcase.Let(s, func(t *testcase.T) *alloc.Counter[int] { return &alloc.Counter[int]{} })
		arena     = testcase.Let(s, func(t *testcase.T) alloc.Arena { return counter.Get(t) })
		upstreams = testcase.Let(s, func(t *testcase.T) []iterators.Upstream { return nil })
	)
	act := func(t *testcase.T) (iterators.Lifecycle, error) {
		return iterators.Open(arena.Get(t), "test", upstreams.Get(t)...)
	}

	s.Then("the state is accounted in the arena", func(t *testcase.T) {
		lc, err := act(t)
		t.Must.NoError(err)
		t.Must.True(lc.Valid())
		t.Must.False(lc.Closed())
		t.Must.Equal(1, counter.Get(t).Live())

		t.Must.True(lc.Release())
		t.Must.True(lc.Closed())
		t.Must.Equal(0, counter.Get(t).Live())

		t.Log("release only happens once")
		t.Must.False(lc.Release())
		t.Must.Equal(0, counter.Get(t).Live())
	})

	s.When("the arena is nil", func(s *testcase.Spec) {
		arena.Let(s, func(t *testcase.T) alloc.Arena { return nil })

		s.Then("it fails", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterators.ErrNilAllocator, err)
		})
	})

	s.When("the arena holds a typed nil", func(s *testcase.Spec) {
		arena.Let(s, func(t *testcase.T) alloc.Arena {
			var c *alloc.Counter[int]
			return c
		})

		s.Then("it fails", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterators.ErrNilAllocator, err)
		})
	})

	s.When("an upstream is nil", func(s *testcase.Spec) {
		upstreams.Let(s, func(t *testcase.T) []iterators.Upstream {
			return []iterators.Upstream{iterators.Empty[int](), nil}
		})

		s.Then("it fails without allocating", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterators.ErrNilUpstream, err)
			t.Must.Equal(0, counter.Get(t).Live())
		})
	})

	s.When("an upstream is invalid", func(s *testcase.Spec) {
		upstreams.Let(s, func(t *testcase.T) []iterators.Upstream {
			return []iterators.Upstream{iterators.Invalid[int](iterators.ErrNilFunc)}
		})

		s.Then("it fails with the cause of the upstream", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterators.ErrInvalidUpstream, err)
			t.Must.ErrorIs(iterators.ErrNilFunc, err)
		})
	})

	s.When("the same upstream is given twice", func(s *testcase.Spec) {
		upstreams.Let(s, func(t *testcase.T) []iterators.Upstream {
			it := iterators.Slice(alloc.Default, []int{1})
			return []iterators.Upstream{it, it}
		})

		s.Then("it fails", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterators.ErrAliasedUpstream, err)
		})
	})

	s.When("the arena refuses the allocation", func(s *testcase.Spec) {
		counter.Let(s, func(t *testcase.T) *alloc.Counter[int] {
			return &alloc.Counter[int]{AllocLimit: 1}
		})
		s.Before(func(t *testcase.T) {
			t.Must.NoError(counter.Get(t).Alloc("other"))
		})

		s.Then("the error is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(alloc.ErrOutOfMemory, err)
		})
	})
}

func TestInvalid(t *testing.T) {
	t.Run("nil error falls back to a generic cause", func(t *testing.T) {
		it := iterators.Invalid[int](nil)
		assert.False(t, it.Valid())
		assert.ErrorIs(t, iterators.ErrInvalidUpstream, it.Err())
	})
	t.Run("every operation is a safe no-op", func(t *testing.T) {
		it := iterators.Invalid[string](iterators.ErrNilFunc)
		assert.False(t, it.HasNext())
		assert.False(t, it.Next())
		assert.False(t, it.HasPrev())
		assert.False(t, it.Prev())
		it.Reset()
		v, ok := it.Get()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.ErrorIs(t, iterators.ErrNilFunc, it.Err())
		assert.NoError(t, it.Close())
	})
	t.Run("it owns the upstreams", func(t *testing.T) {
		counter := &alloc.Counter[int]{}
		up1 := iterators.Slice(counter, []int{1, 2})
		up2 := iterators.Slice(counter, []int{3})
		assert.Equal(t, 2, counter.Live())

		it := iterators.Invalid[int](iterators.ErrNilFunc, up1, up2)
		assert.NoError(t, it.Close())
		assert.Equal(t, 0, counter.Live())
		assert.NoError(t, it.Close())
		assert.Equal(t, 0, counter.Live())
	})
}

func TestEmpty(t *testing.T) {
	it := iterators.Empty[int]()
	assert.True(t, it.Valid())
	assert.NoError(t, it.Err())
	assert.False(t, it.HasNext())
	assert.False(t, it.Next())
	_, ok := it.Get()
	assert.False(t, ok)
	vs, err := iterators.Collect(it)
	assert.NoError(t, err)
	assert.Empty(t, vs)
}
