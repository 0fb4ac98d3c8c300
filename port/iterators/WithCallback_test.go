package iterators_test

import (
	"errors"
	"testing"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
	"go.llib.dev/testcase/assert"
)

func TestWithCallback(t *testing.T) {
	t.Run("without callbacks the iterator is returned as is", func(t *testing.T) {
		i := iterators.Slice(alloc.Default, []int{1})
		assert.Equal(t, i, iterators.WithCallback(i))
	})
	t.Run("OnClose runs once, after the iterator was closed", func(t *testing.T) {
		var (
			counter = &alloc.Counter[int]{}
			calls   int
			live    int
		)
		i := iterators.WithCallback(iterators.Slice(counter, []int{1, 2}), iterators.OnClose(func() error {
			calls++
			live = counter.Live()
			return nil
		}))
		vs, err := iterators.Collect(i)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, vs)
		assert.NoError(t, i.Close())
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, live)
	})
	t.Run("OnClose error is returned from Close", func(t *testing.T) {
		expected := errors.New("boom")
		i := iterators.WithCallback(iterators.Empty[int](), iterators.OnClose(func() error { return expected }))
		assert.ErrorIs(t, expected, i.Close())
	})
}

func TestWithCallback_onError(t *testing.T) {
	t.Run("a failed iteration is reported before the close", func(t *testing.T) {
		var (
			expected = errors.New("boom")
			got      []error
			order    []string
		)
		stub := iterators.Stub(iterators.Slice(alloc.Default, []int{1}))
		stub.StubErr = func() error { return expected }
		stub.StubClose = func() error {
			order = append(order, "close")
			return stub.Iterator.Close()
		}
		i := iterators.WithCallback[int](stub,
			iterators.OnError(func(err error) {
				order = append(order, "error")
				got = append(got, err)
			}),
			iterators.OnClose(func() error {
				order = append(order, "closed")
				return nil
			}))
		assert.NoError(t, i.Close())
		assert.NoError(t, i.Close())
		assert.Equal(t, []error{expected}, got)
		assert.Equal(t, []string{"error", "close", "closed"}, order)
	})
	t.Run("a successful iteration is not reported", func(t *testing.T) {
		var called bool
		i := iterators.WithCallback(iterators.Slice(alloc.Default, []int{1, 2}),
			iterators.OnError(func(error) { called = true }))
		_, err := iterators.Collect(i)
		assert.NoError(t, err)
		assert.False(t, called)
	})
}
