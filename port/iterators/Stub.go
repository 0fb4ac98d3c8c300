package iterators

// Stub wraps an iterator into a test double, whose methods can be replaced one by one.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:    i,
		StubClose:   i.Close,
		StubErr:     i.Err,
		StubValid:   i.Valid,
		StubHasNext: i.HasNext,
		StubGet:     i.Get,
		StubNext:    i.Next,
		StubHasPrev: i.HasPrev,
		StubPrev:    i.Prev,
		StubReset:   i.Reset,
	}
}

type StubIter[T any] struct {
	Iterator    Iterator[T]
	StubClose   func() error
	StubErr     func() error
	StubValid   func() bool
	StubHasNext func() bool
	StubGet     func() (T, bool)
	StubNext    func() bool
	StubHasPrev func() bool
	StubPrev    func() bool
	StubReset   func()
}

// wrapper

func (m *StubIter[T]) Close() error   { return m.StubClose() }
func (m *StubIter[T]) Err() error     { return m.StubErr() }
func (m *StubIter[T]) Valid() bool    { return m.StubValid() }
func (m *StubIter[T]) HasNext() bool  { return m.StubHasNext() }
func (m *StubIter[T]) Get() (T, bool) { return m.StubGet() }
func (m *StubIter[T]) Next() bool     { return m.StubNext() }
func (m *StubIter[T]) HasPrev() bool  { return m.StubHasPrev() }
func (m *StubIter[T]) Prev() bool     { return m.StubPrev() }
func (m *StubIter[T]) Reset()         { m.StubReset() }

// Reseting stubs

func (m *StubIter[T]) ResetClose() { m.StubClose = m.Iterator.Close }
func (m *StubIter[T]) ResetErr()   { m.StubErr = m.Iterator.Err }
func (m *StubIter[T]) ResetGet()   { m.StubGet = m.Iterator.Get }
func (m *StubIter[T]) ResetNext()  { m.StubNext = m.Iterator.Next }
