package iterators

// Empty iterator is used to represent nil result with Null object pattern.
// It is valid, has no private state, and never yields.
func Empty[T any]() Iterator[T] {
	return &emptyIter[T]{}
}

// emptyIter iterator can help achieve Null Object Pattern when no value is logically expected and iterator should be returned
type emptyIter[T any] struct{ forward }

func (i *emptyIter[T]) Close() error   { return nil }
func (i *emptyIter[T]) Err() error     { return nil }
func (i *emptyIter[T]) Valid() bool    { return true }
func (i *emptyIter[T]) HasNext() bool  { return false }
func (i *emptyIter[T]) Next() bool     { return false }
func (i *emptyIter[T]) Reset()         {}
func (i *emptyIter[T]) Get() (T, bool) {
	var zero T
	return zero, false
}
