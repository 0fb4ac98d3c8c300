package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/szmathias/dscontainers/pkg/alloc"
	"github.com/szmathias/dscontainers/pkg/datastruct"
	"github.com/szmathias/dscontainers/pkg/errorkit"
	"github.com/szmathias/dscontainers/pkg/logging"
	"github.com/szmathias/dscontainers/port/iterators"
	"github.com/szmathias/dscontainers/port/iterators/ranges"
)

const (
	ErrInvalidOption errorkit.Error = "invalid option"
	ErrUnbounded     errorkit.Error = "unbounded source, limit it with --take"
	ErrOverflow      errorkit.Error = "integer overflow"
)

const (
	intoArray = "array"
	intoList  = "list"
	intoSList = "slist"
	intoQueue = "queue"
	intoStack = "stack"
	intoSet   = "set"
	intoBST   = "bst"
)

// Options are the pipeline stages and the output settings.
// The stages are applied in the order of the fields.
type Options struct {
	Skip       int
	Filter     string
	Scale      int
	Take       int
	ChainRange string
	ZipRange   string
	Enumerate  int
	Enumerated bool

	Into  string
	Clone bool
	Count bool
	Stats bool

	LogLevel string
	LogJSON  bool
}

func (o Options) Validate() error {
	if o.Skip < 0 {
		return ErrInvalidOption.F("--skip must not be negative: %d", o.Skip)
	}
	switch o.Filter {
	case "", "odd", "even":
	default:
		return ErrInvalidOption.F("unknown --filter %q", o.Filter)
	}
	switch o.Into {
	case intoArray, intoList, intoSList, intoQueue, intoStack, intoSet, intoBST:
	default:
		return ErrInvalidOption.F("unknown --into %q", o.Into)
	}
	for name, value := range map[string]string{"--chain-range": o.ChainRange, "--zip-range": o.ZipRange} {
		if value == "" {
			continue
		}
		if _, err := parseRange(value); err != nil {
			return ErrInvalidOption.Wrap(fmt.Errorf("%s: %w", name, err))
		}
	}
	return nil
}

type source interface {
	Open(a alloc.Arena) iterators.Iterator[int]
	Bounded() bool
}

type rangeSource struct{ Start, End, Step int }

func (s rangeSource) Open(a alloc.Arena) iterators.Iterator[int] {
	return ranges.Range[int](a, s.Start, s.End, s.Step)
}

func (s rangeSource) Bounded() bool { return true }

type repeatSource struct{ Value, Count int }

func (s repeatSource) Open(a alloc.Arena) iterators.Iterator[int] {
	return ranges.Repeat[int](a, s.Value, s.Count)
}

func (s repeatSource) Bounded() bool { return 0 <= s.Count }

type session struct {
	Options Options
	Logger  *logging.Logger
	Out     io.Writer
	Arena   *alloc.Counter[int]
}

func run(ctx context.Context, logger *logging.Logger, opts Options, out io.Writer, src source) error {
	if !src.Bounded() && opts.Take < 0 {
		return ErrUnbounded
	}
	if !src.Bounded() && opts.Filter != "" {
		// the filter runs before --take and may never find a match
		return ErrUnbounded.F("--filter %s", opts.Filter)
	}
	s := &session{
		Options: opts,
		Logger:  logger,
		Out:     out,
		Arena:   &alloc.Counter[int]{Logger: logger},
	}
	ctx = logging.ContextWith(ctx, logging.Field("into", opts.Into))
	it := s.pipeline(src)
	if opts.ZipRange != "" {
		zr, err := parseRange(opts.ZipRange)
		if err != nil {
			_ = it.Close()
			return err
		}
		zipped := iterators.Zip[int, int](s.Arena, it, zr.Open(s.Arena))
		return enumerate(ctx, s, zipped, comparePairs, formatPair)
	}
	return enumerate(ctx, s, it, cmp.Compare[int], strconv.Itoa)
}

func (s *session) pipeline(src source) iterators.Iterator[int] {
	var (
		a  = s.Arena
		it = src.Open(a)
	)
	if 0 < s.Options.Skip {
		it = iterators.Skip[int](a, it, s.Options.Skip)
	}
	switch s.Options.Filter {
	case "odd":
		it = iterators.Filter[int](a, it, func(v int) bool { return v%2 != 0 })
	case "even":
		it = iterators.Filter[int](a, it, func(v int) bool { return v%2 == 0 })
	}
	if s.Options.Scale != 1 {
		k := s.Options.Scale
		it = iterators.Transform[int, int](a, it, func(v int) (int, error) { return multiply(v, k) })
	}
	if 0 <= s.Options.Take {
		it = iterators.Take[int](a, it, s.Options.Take)
	}
	if s.Options.ChainRange != "" {
		cr, err := parseRange(s.Options.ChainRange)
		if err != nil {
			return iterators.Invalid[int](err, it)
		}
		it = iterators.Chain[int](a, it, cr.Open(a))
	}
	return it
}

func enumerate[T comparable](ctx context.Context, s *session, it iterators.Iterator[T], compare func(a, b T) int, format func(T) string) error {
	if !s.Options.Enumerated {
		return drain(ctx, s, it, compare, format)
	}
	en := iterators.Enumerate[T](s.Arena, it, s.Options.Enumerate)
	return drain(ctx, s, en,
		func(a, b iterators.Enumerated[T]) int { return cmp.Compare(a.Index, b.Index) },
		func(e iterators.Enumerated[T]) string { return strconv.Itoa(e.Index) + " " + format(e.Value) })
}

func drain[T comparable](ctx context.Context, s *session, it iterators.Iterator[T], compare func(a, b T) int, format func(T) string) (rErr error) {
	elements := &alloc.Counter[T]{Logger: s.Logger}
	it = iterators.WithCallback(it,
		iterators.OnError(func(err error) {
			s.Logger.Warn(ctx, "pipeline failed", logging.ErrField(err))
		}),
		iterators.OnClose(func() error {
			s.Logger.Debug(ctx, "pipeline closed", logging.Field("live", s.Arena.Live()))
			return nil
		}))
	c, err := collect[T](elements, it, compare, s.Options.Into, s.Options.Clone)
	if err != nil {
		return err
	}
	s.Logger.Info(ctx, "pipeline drained", logging.Field("len", c.Len()))
	defer func() {
		c.Clear()
		if s.Options.Stats {
			rErr = errorkit.Merge(rErr, s.printStats(elements.Copies(), elements.Frees(), s.Arena.Stats(), elements.Stats()))
		}
	}()
	if s.Options.Count {
		n, err := iterators.Count(c.Iter())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.Out, n)
		return err
	}
	return iterators.ForEach(c.Iter(), func(v T) error {
		_, err := fmt.Fprintln(s.Out, format(v))
		return err
	})
}

func collect[T comparable](al alloc.Allocator[T], it iterators.Iterator[T], compare func(a, b T) int, into string, clone bool) (datastruct.Iterable[T], error) {
	var (
		c   datastruct.Iterable[T]
		err error
	)
	switch into {
	case intoArray:
		c, err = datastruct.FromArrayList[T](al, it, clone)
	case intoList:
		c, err = datastruct.FromLinkedList[T](al, it, clone)
	case intoSList:
		c, err = datastruct.FromSinglyLinkedList[T](al, it, clone)
	case intoQueue:
		c, err = datastruct.FromQueue[T](al, it, clone)
	case intoStack:
		c, err = datastruct.FromStack[T](al, it, clone)
	case intoSet:
		c, err = datastruct.FromHashSet[T](al, it, clone)
	case intoBST:
		c, err = datastruct.FromBST[T](al, compare, it, clone)
	default:
		_ = it.Close()
		return nil, ErrInvalidOption.F("unknown --into %q", into)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *session) printStats(copies, frees int, groups ...[]alloc.Stat) error {
	w := s.Out
	if _, err := fmt.Fprintf(w, "%-16s %8s %8s %8s\n", "KIND", "ALLOCS", "DEALLOCS", "LIVE"); err != nil {
		return err
	}
	for _, stats := range groups {
		for _, st := range stats {
			if _, err := fmt.Fprintf(w, "%-16s %8d %8d %8d\n", st.Kind, st.Allocs, st.Deallocs, st.Live()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%-16s %8d %8d %8d\n", alloc.KindElement, copies, frees, copies-frees)
	return err
}

func multiply(v, k int) (int, error) {
	if (v == math.MinInt && k == -1) || (k == math.MinInt && v == -1) {
		return 0, ErrOverflow.F("%d * %d", v, k)
	}
	if k != 0 && (v*k)/k != v {
		return 0, ErrOverflow.F("%d * %d", v, k)
	}
	return v * k, nil
}

func comparePairs(a, b iterators.Pair[int, int]) int {
	if c := cmp.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return cmp.Compare(a.Right, b.Right)
}

func formatPair(p iterators.Pair[int, int]) string {
	return strconv.Itoa(p.Left) + "/" + strconv.Itoa(p.Right)
}

func parseRange(s string) (rangeSource, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return rangeSource{}, ErrInvalidOption.F("range must be START:END:STEP, got %q", s)
	}
	start, end, step, err := parseInts(parts[0], parts[1], parts[2])
	if err != nil {
		return rangeSource{}, err
	}
	return rangeSource{Start: start, End: end, Step: step}, nil
}

func parseInts(a, b, c string) (int, int, int, error) {
	var out [3]int
	for i, s := range []string{a, b, c} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, 0, ErrInvalidOption.Wrap(err)
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}

func parsePair(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, ErrInvalidOption.Wrap(err)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, ErrInvalidOption.Wrap(err)
	}
	return x, y, nil
}
