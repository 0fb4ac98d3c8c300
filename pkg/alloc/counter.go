package alloc

import (
	"context"
	"sort"

	"github.com/szmathias/dscontainers/pkg/logging"
)

// KindElement is the kind Counter uses to account for element copies.
const KindElement = "element"

// Counter is an accounting Allocator.
// It counts every allocation and deallocation per kind, and the element copies that are still alive,
// which makes leaks and double frees observable in tests and in the CLI statistics.
//
// Counter is not safe for concurrent use.
type Counter[T any] struct {
	// Base is the Allocator that does the element work.
	// When nil, elements are copied by value assignment and freeing is a no-op.
	Base Allocator[T]
	// AllocLimit makes Alloc fail with ErrOutOfMemory once this many allocations succeeded.
	// Zero means unlimited.
	AllocLimit int
	// CopyLimit makes Copy fail with ErrOutOfMemory once this many copies succeeded.
	// Zero means unlimited.
	CopyLimit int
	// Logger receives an entry for every accounting event at trace level.
	// Defaults to logging.Default.
	Logger *logging.Logger

	allocs   map[string]int
	deallocs map[string]int
	copies   int
	frees    int
}

// Stat is the accounting of a single kind.
type Stat struct {
	Kind     string
	Allocs   int
	Deallocs int
}

func (s Stat) Live() int { return s.Allocs - s.Deallocs }

func (c *Counter[T]) Alloc(kind string) error {
	if c.allocs == nil {
		c.allocs = make(map[string]int)
	}
	if 0 < c.AllocLimit && c.AllocLimit <= c.totalAllocs() {
		c.logger().Debug(context.Background(), "allocation refused",
			logging.Field("kind", kind),
			logging.Field("limit", c.AllocLimit))
		return ErrOutOfMemory.F("alloc %s", kind)
	}
	if c.Base != nil {
		if err := c.Base.Alloc(kind); err != nil {
			return err
		}
	}
	c.allocs[kind]++
	c.trace("alloc", kind)
	return nil
}

func (c *Counter[T]) Dealloc(kind string) {
	if c.deallocs == nil {
		c.deallocs = make(map[string]int)
	}
	if c.Base != nil {
		c.Base.Dealloc(kind)
	}
	c.deallocs[kind]++
	c.trace("dealloc", kind)
	if c.deallocs[kind] > c.allocs[kind] {
		c.logger().Warn(context.Background(), "more deallocations than allocations",
			logging.Field("kind", kind),
			logging.Field("allocs", c.allocs[kind]),
			logging.Field("deallocs", c.deallocs[kind]))
	}
}

func (c *Counter[T]) CanCopy() bool {
	if c.Base == nil {
		return true
	}
	return c.Base.CanCopy()
}

func (c *Counter[T]) Copy(v T) (T, error) {
	if 0 < c.CopyLimit && c.CopyLimit <= c.copies {
		var zero T
		c.logger().Debug(context.Background(), "copy refused", logging.Field("limit", c.CopyLimit))
		return zero, ErrOutOfMemory.F("copy element")
	}
	out := v
	if c.Base != nil {
		var err error
		out, err = c.Base.Copy(v)
		if err != nil {
			return out, err
		}
	}
	c.copies++
	c.trace("copy", KindElement)
	return out, nil
}

func (c *Counter[T]) Free(v T) {
	if c.Base != nil {
		c.Base.Free(v)
	}
	c.frees++
	c.trace("free", KindElement)
}

// Live is the number of private state allocations that were not released yet.
func (c *Counter[T]) Live() int {
	var n int
	for _, s := range c.Stats() {
		n += s.Live()
	}
	return n
}

// LiveElements is the number of element copies that were not freed yet.
func (c *Counter[T]) LiveElements() int {
	return c.copies - c.frees
}

// Copies is the number of successful element copies.
func (c *Counter[T]) Copies() int { return c.copies }

// Frees is the number of freed elements.
func (c *Counter[T]) Frees() int { return c.frees }

// Stats returns the accounting per kind, ordered by kind.
func (c *Counter[T]) Stats() []Stat {
	var kinds = make(map[string]struct{})
	for k := range c.allocs {
		kinds[k] = struct{}{}
	}
	for k := range c.deallocs {
		kinds[k] = struct{}{}
	}
	var out = make([]Stat, 0, len(kinds))
	for k := range kinds {
		out = append(out, Stat{Kind: k, Allocs: c.allocs[k], Deallocs: c.deallocs[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func (c *Counter[T]) totalAllocs() int {
	var n int
	for _, v := range c.allocs {
		n += v
	}
	return n
}

func (c *Counter[T]) trace(event, kind string) {
	l := c.logger()
	if !l.Enabled(logging.LevelTrace) {
		return
	}
	l.Log(context.Background(), logging.LevelTrace, event, logging.Field("kind", kind))
}

func (c *Counter[T]) logger() *logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Default
}
