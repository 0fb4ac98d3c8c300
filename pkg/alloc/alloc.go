// Package alloc defines the allocator capability that containers and iterators are built over.
//
// An Arena accounts for the private state an iterator or container creates,
// while an Allocator additionally knows how to clone and release the elements themselves.
// Components hold the capability by reference and never own it.
package alloc

import (
	"reflect"

	"github.com/szmathias/dscontainers/pkg/errorkit"
)

const (
	ErrNoCopyFunc   errorkit.Error = "allocator has no copy function"
	ErrOutOfMemory  errorkit.Error = "allocation failed"
	ErrNilAllocator errorkit.Error = "nil allocator"
)

// Arena accounts for private state.
// Every successful Alloc must be paired with exactly one Dealloc of the same kind.
type Arena interface {
	// Alloc records that a piece of private state named kind is being created.
	// A non nil error means the state must not be created.
	Alloc(kind string) error
	// Dealloc records that a piece of private state named kind was released.
	Dealloc(kind string)
}

// Allocator is an Arena that can also clone and release elements of type T.
type Allocator[T any] interface {
	Arena
	// CanCopy reports whether Copy is backed by a copy function.
	CanCopy() bool
	// Copy clones v. The clone is owned by the caller.
	Copy(v T) (T, error)
	// Free releases an element that was produced by Copy or handed over to the owner.
	Free(v T)
}

// Heap is the Arena without any accounting.
type Heap struct{}

func (Heap) Alloc(string) error { return nil }
func (Heap) Dealloc(string)     {}

// Default is the Arena used when state accounting is not needed.
var Default Arena = Heap{}

// Funcs is an Allocator over plain functions.
// Both functions are optional.
type Funcs[T any] struct {
	Heap
	CopyFunc func(T) (T, error)
	FreeFunc func(T)
}

func (a Funcs[T]) CanCopy() bool { return a.CopyFunc != nil }

func (a Funcs[T]) Copy(v T) (T, error) {
	if a.CopyFunc == nil {
		var zero T
		return zero, ErrNoCopyFunc
	}
	return a.CopyFunc(v)
}

func (a Funcs[T]) Free(v T) {
	if a.FreeFunc != nil {
		a.FreeFunc(v)
	}
}

// Shallow returns an Allocator that copies elements by value assignment.
func Shallow[T any]() Funcs[T] {
	return Funcs[T]{CopyFunc: func(v T) (T, error) { return v, nil }}
}

// Of returns an Allocator without copy and free functions.
func Of[T any]() Funcs[T] {
	return Funcs[T]{}
}

// IsNil tells if the capability is missing, including typed nil pointers stored in the interface.
func IsNil(a Arena) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
