package iterators

import "github.com/szmathias/dscontainers/pkg/errorkit"

// Collect drains the iterator into a slice and closes it.
// The returned error is the iterator's Err merged with the error of closing it.
func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer errorkit.Finish(&err, i.Close)
	vs = make([]T, 0)
	for i.HasNext() {
		v, ok := i.Get()
		if !ok {
			break
		}
		vs = append(vs, v)
		if !i.Next() {
			break
		}
	}
	return vs, i.Err()
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i Iterator[T]) (total int, err error) {
	defer errorkit.Finish(&err, i.Close)
	for i.HasNext() && i.Next() {
		total++
	}
	return total, i.Err()
}

const Break errorkit.Error = `iterators:break`

// ForEach calls fn with every element, then closes the iterator.
// Returning Break from fn stops the iteration without an error.
func ForEach[T any](i Iterator[T], fn func(T) error) (rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	for i.HasNext() {
		v, ok := i.Get()
		if !ok {
			break
		}
		err := fn(v)
		if err == Break {
			return nil
		}
		if err != nil {
			return err
		}
		if !i.Next() {
			break
		}
	}
	return i.Err()
}

// First returns the element at the current position of the iterator and closes it.
func First[T any](i Iterator[T]) (value T, found bool, err error) {
	defer errorkit.Finish(&err, i.Close)
	value, found = i.Get()
	return value, found, i.Err()
}

// Last drains the iterator, returns its last element and closes it.
func Last[T any](i Iterator[T]) (value T, found bool, err error) {
	defer errorkit.Finish(&err, i.Close)
	for i.HasNext() {
		v, ok := i.Get()
		if !ok {
			break
		}
		value, found = v, true
		if !i.Next() {
			break
		}
	}
	return value, found, i.Err()
}
