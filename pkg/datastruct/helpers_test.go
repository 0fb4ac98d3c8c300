package datastruct_test

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
)

// arenaAllocator accounts its state in the given Arena, and copies by value.
type arenaAllocator[T any] struct {
	alloc.Arena
	alloc.Funcs[T]
}

func withArena[T any](a alloc.Arena) alloc.Allocator[T] {
	return arenaAllocator[T]{Arena: a, Funcs: alloc.Shallow[T]()}
}

type item struct{ V int }

// itemAllocator counts the element copies of *item values.
func itemAllocator(copyLimit int) *alloc.Counter[*item] {
	return &alloc.Counter[*item]{
		Base: alloc.Funcs[*item]{
			CopyFunc: func(v *item) (*item, error) { return &item{V: v.V}, nil },
		},
		CopyLimit: copyLimit,
	}
}

func items(vs ...int) []*item {
	out := make([]*item, 0, len(vs))
	for _, v := range vs {
		out = append(out, &item{V: v})
	}
	return out
}

func values(vs []*item) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.V)
	}
	return out
}
