package iterators

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/errorkit"
	"github.com/szmathias/dscontainers/port/option"
)

// Transform allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
//
// The mapping runs once per position: its result is cached until Next,
// and it belongs to the caller.
// When the mapping fails, Get yields nothing, Err reports the failure and iteration stops.
// The allocator is used to release upstream elements, as requested with FreeOnError or FreeInput.
func Transform[From, To any](a alloc.Allocator[From], iter Iterator[From], transform func(From) (To, error), opts ...TransformOption) Iterator[To] {
	if transform == nil {
		return Invalid[To](ErrNilFunc, iter)
	}
	lc, err := Open(a, "transform", iter)
	if err != nil {
		return Invalid[To](err, iter)
	}
	return &transformIter[From, To]{
		Lifecycle: lc,
		Iterator:  iter,
		Transform: transform,
		Allocator: a,
		Config:    option.ToConfig[TransformConfig](opts),
	}
}

type TransformOption option.Option[TransformConfig]

type TransformConfig struct {
	// FreeOnError releases the upstream element through the allocator when the mapping fails.
	// Use it when the upstream yields elements the transform owns, like those of Copy or another Transform.
	FreeOnError bool
	// FreeInput releases the upstream element after every mapping, successful or not.
	FreeInput bool
}

// FreeOnError makes Transform release the input element when the mapping fails.
func FreeOnError() TransformOption {
	return option.Func[TransformConfig](func(c *TransformConfig) { c.FreeOnError = true })
}

// FreeInput makes Transform release every input element once it was mapped.
func FreeInput() TransformOption {
	return option.Func[TransformConfig](func(c *TransformConfig) { c.FreeInput = true })
}

type transformIter[From, To any] struct {
	Lifecycle
	forward
	Iterator  Iterator[From]
	Transform func(From) (To, error)
	Allocator alloc.Allocator[From]
	Config    TransformConfig

	value  To
	cached bool
	err    error
}

func (i *transformIter[From, To]) Close() error {
	if !i.Release() {
		return nil
	}
	i.drop()
	return i.Iterator.Close()
}

func (i *transformIter[From, To]) Err() error {
	return errorkit.Merge(i.err, i.Iterator.Err())
}

func (i *transformIter[From, To]) HasNext() bool {
	return !i.Closed() && i.err == nil && i.Iterator.HasNext()
}

func (i *transformIter[From, To]) Get() (To, bool) {
	var zero To
	if i.cached {
		return i.value, true
	}
	if !i.HasNext() {
		return zero, false
	}
	in, ok := i.Iterator.Get()
	if !ok {
		return zero, false
	}
	out, err := i.Transform(in)
	if err != nil {
		i.err = err
		if i.Config.FreeOnError || i.Config.FreeInput {
			i.Allocator.Free(in)
		}
		return zero, false
	}
	if i.Config.FreeInput {
		i.Allocator.Free(in)
	}
	i.value, i.cached = out, true
	return out, true
}

func (i *transformIter[From, To]) Next() bool {
	if !i.HasNext() {
		return false
	}
	i.drop()
	return i.Iterator.Next()
}

func (i *transformIter[From, To]) Reset() {
	if i.Closed() {
		return
	}
	i.drop()
	i.err = nil
	i.Iterator.Reset()
}

// drop forgets the cached result, which is owned by whoever received it from Get.
func (i *transformIter[From, To]) drop() {
	var zero To
	i.value, i.cached = zero, false
}
