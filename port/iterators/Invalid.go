package iterators

// Invalid returns the sentinel iterator that constructors return on bad input.
// It never has an element, Err reports the cause, and Close releases the upstreams it took ownership of.
// Every operation on it is a safe no-op.
func Invalid[T any](err error, upstreams ...Upstream) Iterator[T] {
	if err == nil {
		err = ErrInvalidUpstream
	}
	return &invalidIter[T]{err: err, upstreams: upstreams}
}

type invalidIter[T any] struct {
	forward
	err       error
	upstreams []Upstream
	closed    bool
}

func (i *invalidIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return closeAll(i.upstreams...)
}

func (i *invalidIter[T]) Err() error     { return i.err }
func (i *invalidIter[T]) Valid() bool    { return false }
func (i *invalidIter[T]) HasNext() bool  { return false }
func (i *invalidIter[T]) Next() bool     { return false }
func (i *invalidIter[T]) Reset()         {}
func (i *invalidIter[T]) Get() (T, bool) {
	var zero T
	return zero, false
}
