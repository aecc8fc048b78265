package longrange

import (
	"math"
	"strconv"
)

// Index addresses a position in a collection either from its start or from
// its end, independently of the collection's length.
//
// The value is stored as a single int64: non-negative values count from the
// start, the bitwise complement of a from-end magnitude marks counting from
// the end. The zero value is [Start].
//
// Index is comparable and can be used as a map key.
type Index struct {
	raw int64
}

var (
	// Start addresses the first element of any collection.
	Start = Index{raw: 0}

	// End addresses the position one past the last element of any collection.
	End = Index{raw: ^int64(0)}
)

// FromStart returns an Index value positions after the start.
// Returns [ErrOutOfRange] if value is negative.
func FromStart(value int64) (Index, error) {
	if value < 0 {
		return Index{}, outOfRange("FromStart", "value", value)
	}
	return Index{raw: value}, nil
}

// FromEnd returns an Index value positions before the end, so FromEnd(0) is
// [End] and FromEnd(1) addresses the last element.
// Returns [ErrOutOfRange] if value is negative.
func FromEnd(value int64) (Index, error) {
	if value < 0 {
		return Index{}, outOfRange("FromEnd", "value", value)
	}
	return Index{raw: ^value}, nil
}

// FromInt is [FromStart] or [FromEnd] for a Go int magnitude.
func FromInt(value int, fromEnd bool) (Index, error) {
	if fromEnd {
		return FromEnd(int64(value))
	}
	return FromStart(int64(value))
}

// MustFromStart is like [FromStart] but panics on a negative value.
// Intended for constants and tests.
func MustFromStart(value int64) Index {
	i, err := FromStart(value)
	if err != nil {
		panic(err)
	}
	return i
}

// MustFromEnd is like [FromEnd] but panics on a negative value.
func MustFromEnd(value int64) Index {
	i, err := FromEnd(value)
	if err != nil {
		panic(err)
	}
	return i
}

// Value returns the non-negative magnitude of the index.
func (i Index) Value() int64 {
	if i.raw < 0 {
		return ^i.raw
	}
	return i.raw
}

// IsFromEnd reports whether the index counts from the end of a collection.
func (i Index) IsFromEnd() bool { return i.raw < 0 }

// resolve maps the index onto a collection of the given length without any
// bounds checks. The result may be negative or exceed length.
func (i Index) resolve(length int64) int64 {
	if i.raw < 0 {
		return length - ^i.raw
	}
	return i.raw
}

// Offset resolves the index to an absolute offset that addresses an element
// of a collection of the given length, i.e. 0 <= offset < length.
//
// Returns [ErrOutOfRange] if length is negative or the resolved offset does
// not address an element.
func (i Index) Offset(length int64) (int64, error) {
	return i.offset("Index.Offset", length, false)
}

// BoundaryOffset is like [Index.Offset] but also accepts an offset equal to
// length, which marks the end of the collection (an exclusive bound).
func (i Index) BoundaryOffset(length int64) (int64, error) {
	return i.offset("Index.BoundaryOffset", length, true)
}

func (i Index) offset(op string, length int64, allowLength bool) (int64, error) {
	if length < 0 {
		return 0, outOfRange(op, "length", length)
	}
	off := i.resolve(length)
	if off < 0 || off > length || (!allowLength && off == length) {
		return 0, outOfRange(op, "index", off)
	}
	return off, nil
}

// ClampedOffset resolves the index like [Index.Offset] but constrains the
// result into [0, length-1] instead of failing. A zero length yields 0.
// Returns [ErrOutOfRange] only if length is negative.
func (i Index) ClampedOffset(length int64) (int64, error) {
	return i.clampedOffset("Index.ClampedOffset", length, false)
}

// ClampedBoundaryOffset constrains the resolved offset into [0, length].
// Returns [ErrOutOfRange] only if length is negative.
func (i Index) ClampedBoundaryOffset(length int64) (int64, error) {
	return i.clampedOffset("Index.ClampedBoundaryOffset", length, true)
}

func (i Index) clampedOffset(op string, length int64, allowLength bool) (int64, error) {
	if length < 0 {
		return 0, outOfRange(op, "length", length)
	}
	upper := length
	if !allowLength && upper > 0 {
		upper--
	}
	return clamp(i.resolve(length), 0, upper), nil
}

// ShiftBy moves the index n positions towards the end of a collection (or
// towards the start for negative n), keeping its anchor side.
//
// Returns [ErrOutOfRange] if the magnitude would become negative and
// [ErrOverflow] if it would exceed math.MaxInt64.
func (i Index) ShiftBy(n int64) (Index, error) {
	const op = "Index.ShiftBy"
	v := i.Value()
	if i.IsFromEnd() {
		// Moving towards the end shrinks a from-end magnitude.
		if n < 0 && v > math.MaxInt64+n {
			return Index{}, overflow(op, "n", n)
		}
		if v-n < 0 {
			return Index{}, outOfRange(op, "n", n)
		}
		return Index{raw: ^(v - n)}, nil
	}
	if n > 0 && v > math.MaxInt64-n {
		return Index{}, overflow(op, "n", n)
	}
	if v+n < 0 {
		return Index{}, outOfRange(op, "n", n)
	}
	return Index{raw: v + n}, nil
}

// String formats the index as "5" or, when counting from the end, "^5".
func (i Index) String() string {
	if i.IsFromEnd() {
		return "^" + strconv.FormatInt(i.Value(), 10)
	}
	return strconv.FormatInt(i.raw, 10)
}

// Index32 is the fixed-width form of an Index for APIs that address
// collections with 32-bit positions.
type Index32 struct {
	Value   int32
	FromEnd bool
}

// Narrow converts the index to its 32-bit form.
// Returns [ErrOverflow] if the magnitude exceeds math.MaxInt32.
func (i Index) Narrow() (Index32, error) {
	v := i.Value()
	if v > math.MaxInt32 {
		return Index32{}, overflow("Index.Narrow", "value", v)
	}
	return Index32{Value: int32(v), FromEnd: i.IsFromEnd()}, nil
}

// Widen converts the 32-bit index back to an Index.
// Returns [ErrOutOfRange] if the magnitude is negative.
func (i Index32) Widen() (Index, error) {
	if i.FromEnd {
		return FromEnd(int64(i.Value))
	}
	return FromStart(int64(i.Value))
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
