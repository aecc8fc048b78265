package arrayslice

import (
	"iter"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

// ArraySlice is a mutable, fixed-size view over a window of a backing array.
//
// Slicing never copies: every ArraySlice derived from another one shares its
// backing array, and writes through any of them are visible through the
// array and every other view of it.
//
// The zero value is the default slice. It has no backing array and every
// operation documented to fail on it returns [ErrDefaultInstance]. An empty
// slice over a non-nil array is a different, valid value.
//
// Two ArraySlice values are [ArraySlice.Equal] only when they view the same
// backing array through the same window; element contents are not compared.
type ArraySlice[T any] struct {
	c core[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New returns a slice over the whole of array.
// Returns [ErrNilArray] if array is nil.
func New[T any](array []T) (ArraySlice[T], error) {
	c, err := newCore("arrayslice.New", array)
	return ArraySlice[T]{c: c}, err
}

// NewFrom returns a slice over array starting at offset.
// Returns [ErrNilArray] if array is nil and [ErrOutOfRange] unless
// 0 <= offset <= len(array).
func NewFrom[T any](array []T, offset int) (ArraySlice[T], error) {
	c, err := newCoreFrom("arrayslice.NewFrom", array, int64(offset))
	return ArraySlice[T]{c: c}, err
}

// NewWindow returns a slice over count elements of array starting at offset.
// Returns [ErrNilArray] if array is nil and [ErrOutOfRange] unless the window
// lies inside array.
func NewWindow[T any](array []T, offset, count int) (ArraySlice[T], error) {
	c, err := newCoreWindow("arrayslice.NewWindow", array, int64(offset), int64(count))
	return ArraySlice[T]{c: c}, err
}

// NewRange returns a slice over the part of array selected by r.
// Returns [ErrNilArray] if array is nil and [ErrInvalidSlice] if r is
// degenerate or does not fit array.
func NewRange[T any](array []T, r longrange.Range) (ArraySlice[T], error) {
	c, err := newCoreRange("arrayslice.NewRange", array, r)
	return ArraySlice[T]{c: c}, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsDefault reports whether s is the zero value.
func (s ArraySlice[T]) IsDefault() bool { return s.c.isDefault() }

// Len returns the number of elements in the window, 0 for the default slice.
func (s ArraySlice[T]) Len() int { return int(s.c.count) }

// LongLen is [ArraySlice.Len] as an int64.
func (s ArraySlice[T]) LongLen() int64 { return s.c.count }

// Offset returns the position of the window's first element in the backing
// array.
func (s ArraySlice[T]) Offset() int { return int(s.c.offset) }

// Array returns the whole backing array, nil for the default slice.
func (s ArraySlice[T]) Array() []T { return s.c.array }

// IsReadOnly always returns false.
func (s ArraySlice[T]) IsReadOnly() bool { return false }

// At returns the element at position i of the window.
// Returns [ErrOutOfRange] unless 0 <= i < Len().
func (s ArraySlice[T]) At(i int) (T, error) {
	return s.AtLong(int64(i))
}

// AtLong is [ArraySlice.At] with a 64-bit position.
func (s ArraySlice[T]) AtLong(i int64) (T, error) {
	p, err := s.c.ref("ArraySlice.At", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtIndex returns the element addressed by idx, which may count from the end.
func (s ArraySlice[T]) AtIndex(idx longrange.Index) (T, error) {
	p, err := s.c.refIndex("ArraySlice.AtIndex", idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at position i of the window, which
// aliases the backing array.
func (s ArraySlice[T]) Ref(i int) (*T, error) {
	return s.c.ref("ArraySlice.Ref", int64(i))
}

// Set stores v at position i of the window.
func (s ArraySlice[T]) Set(i int, v T) error {
	p, err := s.c.ref("ArraySlice.Set", int64(i))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// SetIndex stores v at the position addressed by idx.
func (s ArraySlice[T]) SetIndex(idx longrange.Index, v T) error {
	p, err := s.c.refIndex("ArraySlice.SetIndex", idx)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Exact slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the window from offset to the end.
// Returns [ErrOutOfRange] unless 0 <= offset <= Len().
func (s ArraySlice[T]) Slice(offset int) (ArraySlice[T], error) {
	c, err := s.c.slice("ArraySlice.Slice", int64(offset))
	return ArraySlice[T]{c: c}, err
}

// SliceN returns count elements starting at offset.
// Returns [ErrOutOfRange] unless the requested window lies inside s.
func (s ArraySlice[T]) SliceN(offset, count int) (ArraySlice[T], error) {
	c, err := s.c.sliceN("ArraySlice.SliceN", int64(offset), int64(count))
	return ArraySlice[T]{c: c}, err
}

// SliceRange returns the part of s selected by r.
// Returns [ErrInvalidSlice] if r is degenerate or does not fit s.
func (s ArraySlice[T]) SliceRange(r longrange.Range) (ArraySlice[T], error) {
	c, err := s.c.sliceRange("ArraySlice.SliceRange", r)
	return ArraySlice[T]{c: c}, err
}

// TruncateAt returns the first count elements.
// Returns [ErrOutOfRange] unless 0 <= count <= Len().
func (s ArraySlice[T]) TruncateAt(count int) (ArraySlice[T], error) {
	c, err := s.c.truncateAt("ArraySlice.TruncateAt", int64(count))
	return ArraySlice[T]{c: c}, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Clamped slicing
// ─────────────────────────────────────────────────────────────────────────────

// Skip returns s without its first n elements. n is clamped to [0, Len()].
func (s ArraySlice[T]) Skip(n int) (ArraySlice[T], error) {
	c, err := s.c.skip("ArraySlice.Skip", int64(n))
	return ArraySlice[T]{c: c}, err
}

// SkipLast returns s without its last n elements. n is clamped to [0, Len()].
func (s ArraySlice[T]) SkipLast(n int) (ArraySlice[T], error) {
	c, err := s.c.skipLast("ArraySlice.SkipLast", int64(n))
	return ArraySlice[T]{c: c}, err
}

// Take returns at most the first n elements.
func (s ArraySlice[T]) Take(n int) (ArraySlice[T], error) {
	c, err := s.c.take("ArraySlice.Take", int64(n))
	return ArraySlice[T]{c: c}, err
}

// TakeAt returns at most count elements starting at offset, clamped to s.
// A negative offset shrinks count by the deficit.
func (s ArraySlice[T]) TakeAt(offset, count int) (ArraySlice[T], error) {
	c, err := s.c.takeAt("ArraySlice.TakeAt", int64(offset), int64(count))
	return ArraySlice[T]{c: c}, err
}

// TakeRange returns the part of s selected by r, clamped to s. A degenerate
// range yields an empty slice.
func (s ArraySlice[T]) TakeRange(r longrange.Range) (ArraySlice[T], error) {
	c, err := s.c.takeRange("ArraySlice.TakeRange", r)
	return ArraySlice[T]{c: c}, err
}

// TakeLast returns at most the last n elements.
func (s ArraySlice[T]) TakeLast(n int) (ArraySlice[T], error) {
	c, err := s.c.takeLast("ArraySlice.TakeLast", int64(n))
	return ArraySlice[T]{c: c}, err
}

// SkipWhile drops the leading elements for which pred returns true.
// Returns [ErrNilPredicate] if pred is nil.
func (s ArraySlice[T]) SkipWhile(pred func(T) bool) (ArraySlice[T], error) {
	c, err := s.c.skipWhile("ArraySlice.SkipWhile", byElement(pred))
	return ArraySlice[T]{c: c}, err
}

// SkipWhileIndex is [ArraySlice.SkipWhile] with the element's position.
func (s ArraySlice[T]) SkipWhileIndex(pred func(T, int) bool) (ArraySlice[T], error) {
	c, err := s.c.skipWhile("ArraySlice.SkipWhileIndex", byIndex(pred))
	return ArraySlice[T]{c: c}, err
}

// SkipWhileLong is [ArraySlice.SkipWhile] with a 64-bit position.
func (s ArraySlice[T]) SkipWhileLong(pred func(T, int64) bool) (ArraySlice[T], error) {
	c, err := s.c.skipWhile("ArraySlice.SkipWhileLong", pred)
	return ArraySlice[T]{c: c}, err
}

// TakeWhile returns the leading elements for which pred returns true.
// Returns [ErrNilPredicate] if pred is nil.
func (s ArraySlice[T]) TakeWhile(pred func(T) bool) (ArraySlice[T], error) {
	c, err := s.c.takeWhile("ArraySlice.TakeWhile", byElement(pred))
	return ArraySlice[T]{c: c}, err
}

// TakeWhileIndex is [ArraySlice.TakeWhile] with the element's position.
func (s ArraySlice[T]) TakeWhileIndex(pred func(T, int) bool) (ArraySlice[T], error) {
	c, err := s.c.takeWhile("ArraySlice.TakeWhileIndex", byIndex(pred))
	return ArraySlice[T]{c: c}, err
}

// TakeWhileLong is [ArraySlice.TakeWhile] with a 64-bit position.
func (s ArraySlice[T]) TakeWhileLong(pred func(T, int64) bool) (ArraySlice[T], error) {
	c, err := s.c.takeWhile("ArraySlice.TakeWhileLong", pred)
	return ArraySlice[T]{c: c}, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & conversion
// ─────────────────────────────────────────────────────────────────────────────

// Enumerator returns a cursor positioned before the first element.
func (s ArraySlice[T]) Enumerator() (Enumerator[T], error) {
	if s.c.isDefault() {
		return Enumerator[T]{}, defaultInstance("ArraySlice.Enumerator")
	}
	return newEnumerator(s.c), nil
}

// All yields each position and element in order. It yields nothing for the
// default slice.
func (s ArraySlice[T]) All() iter.Seq2[int, T] {
	return s.c.all()
}

// Backward yields each position and element from last to first.
func (s ArraySlice[T]) Backward() iter.Seq2[int, T] {
	return s.c.backward()
}

// Values yields each element in order.
func (s ArraySlice[T]) Values() iter.Seq[T] {
	return s.c.values()
}

// Span returns the window as a Go slice sharing the backing array. Its
// capacity ends with the window, so append never overwrites elements past it.
func (s ArraySlice[T]) Span() ([]T, error) {
	if s.c.isDefault() {
		return nil, defaultInstance("ArraySlice.Span")
	}
	return s.c.window(), nil
}

// Segment returns the backing array with the window's offset and count.
func (s ArraySlice[T]) Segment() (Segment[T], error) {
	if s.c.isDefault() {
		return Segment[T]{}, defaultInstance("ArraySlice.Segment")
	}
	return Segment[T]{Array: s.c.array, Offset: int(s.c.offset), Count: int(s.c.count)}, nil
}

// Clone returns a newly allocated copy of the window's elements.
func (s ArraySlice[T]) Clone() ([]T, error) {
	return s.c.clone("ArraySlice.Clone")
}

// CopyTo copies the window into dst starting at dst[at].
// Returns [ErrOutOfRange] if dst cannot hold Len() elements from at.
func (s ArraySlice[T]) CopyTo(dst []T, at int) error {
	return s.c.copyTo("ArraySlice.CopyTo", dst, at)
}

// IndexFunc returns the position of the first element satisfying pred, or -1.
func (s ArraySlice[T]) IndexFunc(pred func(T) bool) (int, error) {
	return s.c.indexFunc("ArraySlice.IndexFunc", pred)
}

// ReadOnly returns a read-only view of the same window. The default slice
// converts to the default read-only slice.
func (s ArraySlice[T]) ReadOnly() ReadOnly[T] {
	return ReadOnly[T]{c: s.c}
}

// Equal reports whether s and o view the same backing array through the
// same window, or are both default.
func (s ArraySlice[T]) Equal(o ArraySlice[T]) bool { return s.c.equal(o.c) }

// Hash returns a hash consistent with [ArraySlice.Equal] for the lifetime of
// the process.
func (s ArraySlice[T]) Hash() uint64 { return s.c.hash() }

// String formats the window's elements like a Go slice.
func (s ArraySlice[T]) String() string { return s.c.String() }

// ─────────────────────────────────────────────────────────────────────────────
// List contract
// ─────────────────────────────────────────────────────────────────────────────

// Add always returns [ErrUnsupported]: a slice has a fixed size.
func (s ArraySlice[T]) Add(T) error { return unsupported("ArraySlice.Add") }

// Insert always returns [ErrUnsupported].
func (s ArraySlice[T]) Insert(int, T) error { return unsupported("ArraySlice.Insert") }

// RemoveAt always returns [ErrUnsupported].
func (s ArraySlice[T]) RemoveAt(int) error { return unsupported("ArraySlice.RemoveAt") }

// Clear sets every element of the window to its zero value.
func (s ArraySlice[T]) Clear() error {
	if s.c.isDefault() {
		return defaultInstance("ArraySlice.Clear")
	}
	clear(s.c.window())
	return nil
}

func (s ArraySlice[T]) view() core[T] { return s.c }
