package arrayslice

import (
	"errors"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

// Sentinel errors returned by slice operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := s.Slice(5)
//	if errors.Is(err, arrayslice.ErrOutOfRange) {
//	    // offset past the end of the slice
//	}
var (
	// ErrNilArray is returned when a slice is constructed over a nil array.
	ErrNilArray = errors.New("arrayslice: array must not be nil")

	// ErrNilPredicate is returned by the SkipWhile and TakeWhile families
	// when the predicate is nil.
	ErrNilPredicate = errors.New("arrayslice: predicate must not be nil")

	// ErrOutOfRange is returned when an offset, count or element position
	// falls outside the slice. It is the same value as
	// [longrange.ErrOutOfRange].
	ErrOutOfRange = longrange.ErrOutOfRange

	// ErrInvalidSlice is returned when a [longrange.Range] passed to a slice
	// constructor or to SliceRange cannot be resolved, whether because it is
	// degenerate or out of bounds. It does not match ErrOutOfRange or
	// [longrange.ErrDegenerateRange].
	ErrInvalidSlice = errors.New("arrayslice: range does not describe a valid slice")

	// ErrDefaultInstance is returned when an operation is invoked on the zero
	// value of a slice type, which has no backing array.
	ErrDefaultInstance = errors.New("arrayslice: operation on default slice")

	// ErrUnsupported is returned for mutations a view does not allow: any
	// write through a read-only view, and size changes on any slice.
	ErrUnsupported = errors.New("arrayslice: operation not supported")

	// ErrInvalidOperation is returned by [Enumerator.Current] when the
	// enumerator is not positioned on an element.
	ErrInvalidOperation = errors.New("arrayslice: invalid operation")

	// ErrInvalidConversion is returned by [FromChild] when the element type
	// cannot be viewed as the requested interface type.
	ErrInvalidConversion = errors.New("arrayslice: invalid element conversion")

	// ErrTypeMismatch is returned when a value stored through a [Covariant]
	// view does not have the backing array's element type.
	ErrTypeMismatch = errors.New("arrayslice: value type does not match array element type")
)

func outOfRange(op, param string, value int64) error {
	return &longrange.ArgumentError{Op: op, Param: param, Value: value, Err: ErrOutOfRange}
}
