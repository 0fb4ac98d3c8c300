// Package ranges holds the source generators of the iterators package.
package ranges

import (
	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/port/iterators"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Range yields the arithmetic progression start, start+step, start+2*step...
// up to, but not including, end.
//
// A zero step, or a step that points away from end, makes the iterator invalid.
// When start equals end, the range is empty and valid.
// Range can move backwards and can be reset.
func Range[N Number](a alloc.Arena, start, end, step N) iterators.Iterator[N] {
	if step == 0 {
		return iterators.Invalid[N](iterators.ErrZeroStep)
	}
	if (start < end && step < 0) || (end < start && 0 < step) {
		return iterators.Invalid[N](iterators.ErrStepDirection.F("range from %v to %v by %v", start, end, step))
	}
	lc, err := iterators.Open(a, "range")
	if err != nil {
		return iterators.Invalid[N](err)
	}
	return &numberRange[N]{Lifecycle: lc, Start: start, End: end, Step: step, value: start}
}

type numberRange[N Number] struct {
	iterators.Lifecycle
	Start, End, Step N

	pos   int
	value N
	// wrapped is set when the next value could not be represented.
	wrapped bool
}

func (r *numberRange[N]) Close() error {
	r.Release()
	return nil
}

func (r *numberRange[N]) Err() error { return nil }

func (r *numberRange[N]) HasNext() bool {
	if r.Closed() || r.wrapped {
		return false
	}
	if 0 < r.Step {
		return r.value < r.End
	}
	return r.End < r.value
}

func (r *numberRange[N]) Get() (N, bool) {
	if !r.HasNext() {
		return 0, false
	}
	return r.value, true
}

func (r *numberRange[N]) Next() bool {
	if !r.HasNext() {
		return false
	}
	next := r.at(r.pos + 1)
	if (0 < r.Step && next <= r.value) || (r.Step < 0 && r.value <= next) {
		r.wrapped = true
	}
	r.pos++
	r.value = next
	return true
}

func (r *numberRange[N]) HasPrev() bool {
	return !r.Closed() && 0 < r.pos
}

func (r *numberRange[N]) Prev() bool {
	if !r.HasPrev() {
		return false
	}
	r.pos--
	r.value = r.at(r.pos)
	r.wrapped = false
	return true
}

func (r *numberRange[N]) Reset() {
	r.pos = 0
	r.value = r.Start
	r.wrapped = false
}

// at computes the value from the position, so floating point errors do not accumulate.
func (r *numberRange[N]) at(pos int) N {
	return r.Start + N(pos)*r.Step
}
