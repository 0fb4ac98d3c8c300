// Package iterators provide the iterator protocol and the combinators that compose iterators.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Every container and every source generator produces values through the same Iterator contract,
// so a consumer can filter, transform, bound, zip or chain them without knowing where they come from.
// Evaluation is lazy and pull based: each layer asks the layer beneath it for the current element
// only when its own consumer asks for it.
//
// # Ownership
//
// Passing an iterator into a constructor transfers it.
// The returned iterator is the only owner from then on,
// and closing it closes every iterator it was built from.
// This holds even when construction fails:
// the invalid iterator that is returned still owns, and on Close releases, its upstreams.
//
// Values yielded by Transform and Copy belong to the caller.
// Filter, Take and Skip pass through values that still belong to whatever produced them,
// and the pairs of Zip and Enumerate borrow their elements from the upstream.
//
// Iterators are not safe for concurrent use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package iterators

import (
	"io"
	"reflect"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/errorkit"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[T any] interface {
	// Closer releases the iterator's private state and closes every upstream iterator it owns.
	// Only the first call has an effect, after that the iterator behaves as exhausted.
	io.Closer
	// Err return the error cause.
	// It is either the reason why the iterator is invalid,
	// or the failure that stopped element production, like a failed mapping or copy.
	// Exhaustion is not an error.
	Err() error
	// Valid reports whether the iterator was constructed successfully.
	// It is independent of exhaustion.
	Valid() bool
	// HasNext reports whether the current position holds an element, so a subsequent Next would succeed.
	// It never moves the position.
	HasNext() bool
	// Get returns the element at the current position without advancing.
	// Repeated calls before Next return the same value.
	Get() (T, bool)
	// Next advances the position by one.
	// It returns false when the iterator was already exhausted.
	Next() bool
	// HasPrev reports whether Prev would succeed.
	// Only bidirectional iterators ever return true.
	HasPrev() bool
	// Prev moves the position back by one.
	Prev() bool
	// Reset returns the iterator to its initial position.
	// Iterators that can not rewind ignore the call.
	Reset()
}

const (
	ErrNilUpstream     errorkit.Error = "nil upstream iterator"
	ErrInvalidUpstream errorkit.Error = "invalid upstream iterator"
	ErrAliasedUpstream errorkit.Error = "the same iterator was passed more than once"
	ErrNilFunc         errorkit.Error = "nil function"
	ErrNegativeCount   errorkit.Error = "negative count"
	ErrZeroStep        errorkit.Error = "zero step"
	ErrStepDirection   errorkit.Error = "step points away from the end of the range"

	ErrNilAllocator = alloc.ErrNilAllocator
	ErrNoCopyFunc   = alloc.ErrNoCopyFunc
)

// Upstream is the part of an Iterator that a constructor needs to take ownership of it,
// regardless of its element type.
type Upstream interface {
	io.Closer
	Err() error
	Valid() bool
}

// Lifecycle is the private state bookkeeping shared by iterator implementations.
// Embed it to get Valid and the once-only release of the accounted state.
type Lifecycle struct {
	arena  alloc.Arena
	kind   string
	closed bool
}

// Open validates the upstream iterators and accounts for a new piece of private state in the Arena.
// When it returns an error, the caller should return Invalid with the same upstreams,
// so ownership of them is kept.
func Open(a alloc.Arena, kind string, upstreams ...Upstream) (Lifecycle, error) {
	for i, up := range upstreams {
		if isNil(up) {
			return Lifecycle{}, ErrNilUpstream
		}
		for _, oth := range upstreams[:i] {
			if sameIterator(up, oth) {
				return Lifecycle{}, ErrAliasedUpstream
			}
		}
	}
	for _, up := range upstreams {
		if !up.Valid() {
			return Lifecycle{}, ErrInvalidUpstream.Wrap(up.Err())
		}
	}
	if alloc.IsNil(a) {
		return Lifecycle{}, ErrNilAllocator
	}
	if err := a.Alloc(kind); err != nil {
		return Lifecycle{}, err
	}
	return Lifecycle{arena: a, kind: kind}, nil
}

// Valid is always true, a Lifecycle only exists after a successful Open.
func (l *Lifecycle) Valid() bool { return true }

// Closed tells if the state was already released.
func (l *Lifecycle) Closed() bool { return l.closed }

// Release gives the accounted state back to the Arena.
// It returns true only for the first call, so the caller knows when to close its upstreams.
func (l *Lifecycle) Release() bool {
	if l.closed {
		return false
	}
	l.closed = true
	if l.arena != nil {
		l.arena.Dealloc(l.kind)
	}
	return true
}

// forward is embedded by iterators that can only move forward.
type forward struct{}

func (forward) HasPrev() bool { return false }
func (forward) Prev() bool    { return false }

func closeAll[U Upstream](ups ...U) error {
	var errs []error
	for _, up := range ups {
		if isNil(up) {
			continue
		}
		errs = append(errs, up.Close())
	}
	return errorkit.Merge(errs...)
}

func errAll[U Upstream](ups ...U) error {
	var errs []error
	for _, up := range ups {
		errs = append(errs, up.Err())
	}
	return errorkit.Merge(errs...)
}

// IsNil tells if the upstream is missing, including typed nil pointers stored in the interface.
func IsNil(up Upstream) bool { return isNil(up) }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func sameIterator(a, b Upstream) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || va.Type() != vb.Type() {
		return false
	}
	// pointers to zero sized values may share their address
	if va.Type().Elem().Size() == 0 {
		return false
	}
	return va.Pointer() == vb.Pointer()
}
