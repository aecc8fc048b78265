package arrayslice

import "fmt"

const (
	notStarted      int64 = -1
	alreadyFinished int64 = -2
)

var (
	errNotStarted      = fmt.Errorf("%w: enumeration has not started", ErrInvalidOperation)
	errAlreadyFinished = fmt.Errorf("%w: enumeration already finished", ErrInvalidOperation)
)

// Enumerator is a cursor over a slice. It starts before the first element;
// each successful [Enumerator.MoveNext] advances it by one, and once it has
// run past the last element it stays finished until [Enumerator.Reset].
//
//	e, _ := s.Enumerator()
//	for e.MoveNext() {
//	    v, _ := e.Current()
//	    ...
//	}
//
// Enumerator holds a copy of the slice window, so re-slicing the source
// afterwards does not affect it. Element writes to the shared backing array
// are visible through Current.
type Enumerator[T any] struct {
	c   core[T]
	pos int64
}

func newEnumerator[T any](c core[T]) Enumerator[T] {
	return Enumerator[T]{c: c, pos: notStarted}
}

// MoveNext advances to the next element and reports whether there is one.
func (e *Enumerator[T]) MoveNext() bool {
	if e.pos == alreadyFinished {
		return false
	}
	if next := e.pos + 1; next >= 0 && next < e.c.count {
		e.pos = next
		return true
	}
	e.pos = alreadyFinished
	return false
}

// Current returns the element under the cursor.
// Returns [ErrInvalidOperation] before the first MoveNext and after the last.
func (e *Enumerator[T]) Current() (T, error) {
	var zero T
	switch {
	case e.pos == notStarted:
		return zero, errNotStarted
	case e.pos < 0 || e.pos >= e.c.count:
		return zero, errAlreadyFinished
	}
	return e.c.array[e.c.offset+e.pos], nil
}

// Reset moves the cursor back before the first element. It does nothing for
// an enumerator over a default slice.
func (e *Enumerator[T]) Reset() {
	if e.c.isDefault() {
		return
	}
	e.pos = notStarted
}
