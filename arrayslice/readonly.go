package arrayslice

import (
	"iter"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

// ReadOnly is a read-only view over a window of a backing array. It offers
// the same reading and slicing operations as [ArraySlice]; every mutation
// returns [ErrUnsupported].
//
// The backing array itself stays mutable through other references, and such
// writes are visible through the view.
type ReadOnly[T any] struct {
	c core[T]
}

// NewReadOnly returns a read-only slice over the whole of array.
// Returns [ErrNilArray] if array is nil.
func NewReadOnly[T any](array []T) (ReadOnly[T], error) {
	c, err := newCore("arrayslice.NewReadOnly", array)
	return ReadOnly[T]{c: c}, err
}

// NewReadOnlyFrom returns a read-only slice over array starting at offset.
func NewReadOnlyFrom[T any](array []T, offset int) (ReadOnly[T], error) {
	c, err := newCoreFrom("arrayslice.NewReadOnlyFrom", array, int64(offset))
	return ReadOnly[T]{c: c}, err
}

// NewReadOnlyWindow returns a read-only slice over count elements of array
// starting at offset.
func NewReadOnlyWindow[T any](array []T, offset, count int) (ReadOnly[T], error) {
	c, err := newCoreWindow("arrayslice.NewReadOnlyWindow", array, int64(offset), int64(count))
	return ReadOnly[T]{c: c}, err
}

// NewReadOnlyRange returns a read-only slice over the part of array selected
// by r. Returns [ErrInvalidSlice] if r is degenerate or does not fit array.
func NewReadOnlyRange[T any](array []T, r longrange.Range) (ReadOnly[T], error) {
	c, err := newCoreRange("arrayslice.NewReadOnlyRange", array, r)
	return ReadOnly[T]{c: c}, err
}

// IsDefault reports whether s is the zero value.
func (s ReadOnly[T]) IsDefault() bool { return s.c.isDefault() }

// Len returns the number of elements in the window, 0 for the default slice.
func (s ReadOnly[T]) Len() int { return int(s.c.count) }

// LongLen is [ReadOnly.Len] as an int64.
func (s ReadOnly[T]) LongLen() int64 { return s.c.count }

// IsReadOnly always returns true.
func (s ReadOnly[T]) IsReadOnly() bool { return true }

// At returns the element at position i of the window.
func (s ReadOnly[T]) At(i int) (T, error) {
	return s.AtLong(int64(i))
}

// AtLong is [ReadOnly.At] with a 64-bit position.
func (s ReadOnly[T]) AtLong(i int64) (T, error) {
	p, err := s.c.ref("ReadOnly.At", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtIndex returns the element addressed by idx.
func (s ReadOnly[T]) AtIndex(idx longrange.Index) (T, error) {
	p, err := s.c.refIndex("ReadOnly.AtIndex", idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (s ReadOnly[T]) Slice(offset int) (ReadOnly[T], error) {
	c, err := s.c.slice("ReadOnly.Slice", int64(offset))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SliceN(offset, count int) (ReadOnly[T], error) {
	c, err := s.c.sliceN("ReadOnly.SliceN", int64(offset), int64(count))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SliceRange(r longrange.Range) (ReadOnly[T], error) {
	c, err := s.c.sliceRange("ReadOnly.SliceRange", r)
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TruncateAt(count int) (ReadOnly[T], error) {
	c, err := s.c.truncateAt("ReadOnly.TruncateAt", int64(count))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) Skip(n int) (ReadOnly[T], error) {
	c, err := s.c.skip("ReadOnly.Skip", int64(n))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SkipLast(n int) (ReadOnly[T], error) {
	c, err := s.c.skipLast("ReadOnly.SkipLast", int64(n))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) Take(n int) (ReadOnly[T], error) {
	c, err := s.c.take("ReadOnly.Take", int64(n))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeAt(offset, count int) (ReadOnly[T], error) {
	c, err := s.c.takeAt("ReadOnly.TakeAt", int64(offset), int64(count))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeRange(r longrange.Range) (ReadOnly[T], error) {
	c, err := s.c.takeRange("ReadOnly.TakeRange", r)
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeLast(n int) (ReadOnly[T], error) {
	c, err := s.c.takeLast("ReadOnly.TakeLast", int64(n))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SkipWhile(pred func(T) bool) (ReadOnly[T], error) {
	c, err := s.c.skipWhile("ReadOnly.SkipWhile", byElement(pred))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SkipWhileIndex(pred func(T, int) bool) (ReadOnly[T], error) {
	c, err := s.c.skipWhile("ReadOnly.SkipWhileIndex", byIndex(pred))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) SkipWhileLong(pred func(T, int64) bool) (ReadOnly[T], error) {
	c, err := s.c.skipWhile("ReadOnly.SkipWhileLong", pred)
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeWhile(pred func(T) bool) (ReadOnly[T], error) {
	c, err := s.c.takeWhile("ReadOnly.TakeWhile", byElement(pred))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeWhileIndex(pred func(T, int) bool) (ReadOnly[T], error) {
	c, err := s.c.takeWhile("ReadOnly.TakeWhileIndex", byIndex(pred))
	return ReadOnly[T]{c: c}, err
}

func (s ReadOnly[T]) TakeWhileLong(pred func(T, int64) bool) (ReadOnly[T], error) {
	c, err := s.c.takeWhile("ReadOnly.TakeWhileLong", pred)
	return ReadOnly[T]{c: c}, err
}

// Enumerator returns a cursor positioned before the first element.
func (s ReadOnly[T]) Enumerator() (Enumerator[T], error) {
	if s.c.isDefault() {
		return Enumerator[T]{}, defaultInstance("ReadOnly.Enumerator")
	}
	return newEnumerator(s.c), nil
}

func (s ReadOnly[T]) All() iter.Seq2[int, T] { return s.c.all() }

func (s ReadOnly[T]) Backward() iter.Seq2[int, T] { return s.c.backward() }

func (s ReadOnly[T]) Values() iter.Seq[T] { return s.c.values() }

func (s ReadOnly[T]) Clone() ([]T, error) { return s.c.clone("ReadOnly.Clone") }

func (s ReadOnly[T]) CopyTo(dst []T, at int) error {
	return s.c.copyTo("ReadOnly.CopyTo", dst, at)
}

func (s ReadOnly[T]) IndexFunc(pred func(T) bool) (int, error) {
	return s.c.indexFunc("ReadOnly.IndexFunc", pred)
}

// Equal reports whether s and o view the same backing array through the
// same window, or are both default.
func (s ReadOnly[T]) Equal(o ReadOnly[T]) bool { return s.c.equal(o.c) }

func (s ReadOnly[T]) Hash() uint64 { return s.c.hash() }

func (s ReadOnly[T]) String() string { return s.c.String() }

// Set always returns [ErrUnsupported].
func (s ReadOnly[T]) Set(int, T) error { return unsupported("ReadOnly.Set") }

// Add always returns [ErrUnsupported].
func (s ReadOnly[T]) Add(T) error { return unsupported("ReadOnly.Add") }

// Insert always returns [ErrUnsupported].
func (s ReadOnly[T]) Insert(int, T) error { return unsupported("ReadOnly.Insert") }

// RemoveAt always returns [ErrUnsupported].
func (s ReadOnly[T]) RemoveAt(int) error { return unsupported("ReadOnly.RemoveAt") }

// Clear always returns [ErrUnsupported].
func (s ReadOnly[T]) Clear() error { return unsupported("ReadOnly.Clear") }

func (s ReadOnly[T]) view() core[T] { return s.c }
