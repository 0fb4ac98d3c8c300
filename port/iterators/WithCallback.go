package iterators

import (
	"github.com/szmathias/dscontainers/pkg/errorkit"
	"github.com/szmathias/dscontainers/port/option"
)

// WithCallback decorates the iterator with hooks that run when it is closed.
// The decorator owns the iterator and passes every other call through,
// so it keeps the iterator's direction, validity and accounting.
// The hooks run once, with the first Close.
func WithCallback[T any](i Iterator[T], opts ...CallbackOption) Iterator[T] {
	if len(opts) == 0 {
		return i
	}
	return &callbackIter[T]{Iterator: i, Config: option.ToConfig[CallbackConfig](opts)}
}

type CallbackOption option.Option[CallbackConfig]

type CallbackConfig struct {
	// OnClose hooks run after the iterator was closed, in registration order.
	OnClose []func() error
	// OnError receives the error the iterator reported, right before it is closed.
	OnError []func(error)
}

// OnClose registers a hook that runs after the iterator was closed.
// Its error is merged into the one Close returns.
func OnClose(fn func() error) CallbackOption {
	return option.Func[CallbackConfig](func(c *CallbackConfig) { c.OnClose = append(c.OnClose, fn) })
}

// OnError registers a hook that is told about a failed iteration.
// It is not called when the iterator finished without an error.
func OnError(fn func(error)) CallbackOption {
	return option.Func[CallbackConfig](func(c *CallbackConfig) { c.OnError = append(c.OnError, fn) })
}

type callbackIter[T any] struct {
	Iterator[T]
	Config CallbackConfig

	closed bool
}

func (i *callbackIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if err := i.Iterator.Err(); err != nil {
		for _, fn := range i.Config.OnError {
			fn(err)
		}
	}
	errs := []error{i.Iterator.Close()}
	for _, fn := range i.Config.OnClose {
		errs = append(errs, fn())
	}
	return errorkit.Merge(errs...)
}
