package longrange

import "fmt"

// Range is a pair of indices: Start is inclusive, End is exclusive.
//
// A Range may be degenerate (its start lies after its end for every
// collection length). Degenerate ranges are valid values; only the exact
// resolution family ([Range.Offset], [Range.Length], [Range.OffsetAndLength])
// rejects them. The clamped family treats them as empty.
type Range struct {
	Start Index
	End   Index
}

// All is the range covering an entire collection.
var All = Range{Start: Start, End: End}

// New returns the range [start, end).
func New(start, end Index) Range {
	return Range{Start: start, End: end}
}

// StartAt returns the range from start to the end of the collection.
func StartAt(start Index) Range {
	return Range{Start: start, End: End}
}

// EndAt returns the range from the start of the collection to end.
func EndAt(end Index) Range {
	return Range{Start: Start, End: end}
}

// FromStartAndCount returns the range of count elements beginning at start.
//
// Returns [ErrOutOfRange] if count is negative or if start counts from the
// end and fewer than count positions remain before the end.
func FromStartAndCount(start Index, count int64) (Range, error) {
	if count < 0 {
		return Range{}, outOfRange("FromStartAndCount", "count", count)
	}
	end, err := start.ShiftBy(count)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// IsDegenerate reports whether both endpoints count from the same side and
// the start lies after the end, so the length is negative for every
// collection length. Ranges with mixed anchors are never degenerate.
func (r Range) IsDegenerate() bool {
	n, fixed := r.FixedCount()
	return fixed && n < 0
}

// HasFixedCount reports whether the range's length is independent of the
// collection length, i.e. both endpoints share an anchor side.
func (r Range) HasFixedCount() bool {
	return r.Start.IsFromEnd() == r.End.IsFromEnd()
}

// FixedCount returns the length of a range whose endpoints share an anchor
// side. The count is negative for a degenerate range. ok is false for ranges
// with mixed anchors.
func (r Range) FixedCount() (count int64, ok bool) {
	if !r.HasFixedCount() {
		return 0, false
	}
	if r.Start.IsFromEnd() {
		return r.Start.Value() - r.End.Value(), true
	}
	return r.End.Value() - r.Start.Value(), true
}

// Offset resolves the start of the range against a collection of the given
// length.
//
// Returns [ErrOutOfRange] if length is negative or the start falls outside
// [0, length], and [ErrDegenerateRange] if the end resolves before the start.
func (r Range) Offset(length int64) (int64, error) {
	off, _, err := r.resolve("Range.Offset", length, false)
	return off, err
}

// Length resolves the number of elements the range selects in a collection
// of the given length. Failure modes match [Range.OffsetAndLength].
func (r Range) Length(length int64) (int64, error) {
	_, n, err := r.resolve("Range.Length", length, true)
	return n, err
}

// OffsetAndLength resolves both the start offset and the element count.
//
// Returns [ErrDegenerateRange] if the end resolves before the start, and
// [ErrOutOfRange] if length is negative, the start falls outside
// [0, length], or the end falls past length.
func (r Range) OffsetAndLength(length int64) (offset, count int64, err error) {
	return r.resolve("Range.OffsetAndLength", length, true)
}

func (r Range) resolve(op string, length int64, checkEnd bool) (int64, int64, error) {
	if length < 0 {
		return 0, 0, outOfRange(op, "length", length)
	}
	if r.IsDegenerate() {
		return 0, 0, fmt.Errorf("%s: %v: %w", op, r, ErrDegenerateRange)
	}
	off := r.Start.resolve(length)
	if off < 0 || off > length {
		return 0, 0, outOfRange(op, "start", off)
	}
	end := r.End.resolve(length)
	if end < off {
		return 0, 0, fmt.Errorf("%s: %v at length %d: %w", op, r, length, ErrDegenerateRange)
	}
	if !checkEnd {
		return off, 0, nil
	}
	if end > length {
		return 0, 0, outOfRange(op, "end", end)
	}
	return off, end - off, nil
}

// ClampedOffset is the offset half of [Range.ClampedOffsetAndLength].
func (r Range) ClampedOffset(length int64) (int64, error) {
	off, _, err := r.clamped("Range.ClampedOffset", length)
	return off, err
}

// ClampedLength is the length half of [Range.ClampedOffsetAndLength].
func (r Range) ClampedLength(length int64) (int64, error) {
	_, n, err := r.clamped("Range.ClampedLength", length)
	return n, err
}

// ClampedOffsetAndLength resolves the range like [Range.OffsetAndLength] but
// constrains the result to the collection instead of failing: the offset
// lands in [0, length] and the count in [0, length-offset]. A degenerate
// range yields a zero count at the clamped start.
//
// Returns [ErrOutOfRange] only if length is negative.
func (r Range) ClampedOffsetAndLength(length int64) (offset, count int64, err error) {
	return r.clamped("Range.ClampedOffsetAndLength", length)
}

func (r Range) clamped(op string, length int64) (int64, int64, error) {
	if length < 0 {
		return 0, 0, outOfRange(op, "length", length)
	}
	// Clamping both endpoints before subtracting keeps the arithmetic inside
	// [0, length]; a negative start shrinks the count by the deficit.
	off := clamp(r.Start.resolve(length), 0, length)
	end := clamp(r.End.resolve(length), off, length)
	return off, end - off, nil
}

// String formats the range as "start..end", for example "1..^1".
func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Range32 is the fixed-width form of a Range.
type Range32 struct {
	Start Index32
	End   Index32
}

// Narrow converts the range to its 32-bit form.
// Returns [ErrOverflow] if either endpoint's magnitude exceeds math.MaxInt32.
func (r Range) Narrow() (Range32, error) {
	start, err := r.Start.Narrow()
	if err != nil {
		return Range32{}, err
	}
	end, err := r.End.Narrow()
	if err != nil {
		return Range32{}, err
	}
	return Range32{Start: start, End: end}, nil
}

// Widen converts the 32-bit range back to a Range.
// Returns [ErrOutOfRange] if either magnitude is negative.
func (r Range32) Widen() (Range, error) {
	start, err := r.Start.Widen()
	if err != nil {
		return Range{}, err
	}
	end, err := r.End.Widen()
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}
