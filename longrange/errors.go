package longrange

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Index and Range operations.
//
// Use [errors.Is] for comparisons:
//
//	off, err := r.Offset(n)
//	if errors.Is(err, longrange.ErrDegenerateRange) {
//	    // start lies after end
//	}
var (
	// ErrOutOfRange is returned when an offset, count, collection length or
	// index magnitude falls outside the values valid for the operation.
	ErrOutOfRange = errors.New("longrange: value out of range")

	// ErrDegenerateRange is returned by the exact resolution family when the
	// range's start lies after its end.
	ErrDegenerateRange = errors.New("longrange: degenerate range")

	// ErrOverflow is returned when a 64-bit value cannot be represented in a
	// narrower index type, or when shifting an index exceeds math.MaxInt64.
	ErrOverflow = errors.New("longrange: arithmetic overflow")
)

// ArgumentError records the operation, parameter and offending value behind a
// numeric failure. Unwrap yields one of the package sentinels.
type ArgumentError struct {
	Op    string
	Param string
	Value int64
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s=%d: %v", e.Op, e.Param, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ParamOf extracts the parameter name from the first [*ArgumentError] in
// err's chain.
func ParamOf(err error) (string, bool) {
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Param, true
	}
	return "", false
}

func outOfRange(op, param string, value int64) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Err: ErrOutOfRange}
}

func overflow(op, param string, value int64) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Err: ErrOverflow}
}
