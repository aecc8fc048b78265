package collections

import (
	"errors"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

// Sentinel errors returned by collections helpers.
var (
	// ErrNilSelector is returned by [Select] when the selector is nil.
	ErrNilSelector = errors.New("collections: selector must not be nil")

	// ErrDimensionMismatch is returned by [Wrap2D] when the flat array does
	// not hold exactly rows*cols items.
	ErrDimensionMismatch = errors.New("collections: array length does not match dimensions")

	// ErrOutOfRange is returned when a row, column or dimension is invalid.
	// It is the same value as [longrange.ErrOutOfRange].
	ErrOutOfRange = longrange.ErrOutOfRange
)

func outOfRange(op, param string, value int) error {
	return &longrange.ArgumentError{Op: op, Param: param, Value: int64(value), Err: ErrOutOfRange}
}
