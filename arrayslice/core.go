package arrayslice

import (
	"fmt"
	"hash/maphash"
	"iter"
	"unsafe"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

// core is the window shared by every slice type: a backing array plus an
// offset and count into it. Operations return a new core referencing the
// same array; elements are never copied by slicing.
//
// Invariant: 0 <= offset, 0 <= count, offset+count <= len(array).
// A nil array is the default (zero) value.
type core[T any] struct {
	array  []T
	offset int64
	count  int64
}

var hashSeed = maphash.MakeSeed()

func defaultInstance(op string) error {
	return fmt.Errorf("%s: %w", op, ErrDefaultInstance)
}

func invalidSlice(op string, cause error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrInvalidSlice, cause)
}

func newCore[T any](op string, array []T) (core[T], error) {
	if array == nil {
		return core[T]{}, fmt.Errorf("%s: %w", op, ErrNilArray)
	}
	return core[T]{array: array, count: int64(len(array))}, nil
}

func newCoreFrom[T any](op string, array []T, offset int64) (core[T], error) {
	c, err := newCore(op, array)
	if err != nil {
		return c, err
	}
	return c.slice(op, offset)
}

func newCoreWindow[T any](op string, array []T, offset, count int64) (core[T], error) {
	c, err := newCore(op, array)
	if err != nil {
		return c, err
	}
	return c.sliceN(op, offset, count)
}

func newCoreRange[T any](op string, array []T, r longrange.Range) (core[T], error) {
	c, err := newCore(op, array)
	if err != nil {
		return c, err
	}
	return c.sliceRange(op, r)
}

func (c core[T]) isDefault() bool { return c.array == nil }

// window returns the elements as a Go slice whose capacity ends with the
// window, so appending to it reallocates instead of overwriting the array.
func (c core[T]) window() []T {
	lo, hi := int(c.offset), int(c.offset+c.count)
	return c.array[lo:hi:hi]
}

// ref returns a pointer to element i. Go's own bounds check only covers the
// backing array, so the window is checked here.
func (c core[T]) ref(op string, i int64) (*T, error) {
	if c.isDefault() {
		return nil, defaultInstance(op)
	}
	if i < 0 || i >= c.count {
		return nil, outOfRange(op, "index", i)
	}
	return &c.array[c.offset+i], nil
}

func (c core[T]) refIndex(op string, idx longrange.Index) (*T, error) {
	if c.isDefault() {
		return nil, defaultInstance(op)
	}
	i, err := idx.Offset(c.count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c.array[c.offset+i], nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Exact slicing
// ─────────────────────────────────────────────────────────────────────────────

func (c core[T]) truncateAt(op string, count int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if count < 0 || count > c.count {
		return core[T]{}, outOfRange(op, "count", count)
	}
	return core[T]{array: c.array, offset: c.offset, count: count}, nil
}

func (c core[T]) slice(op string, offset int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if offset < 0 || offset > c.count {
		return core[T]{}, outOfRange(op, "offset", offset)
	}
	return core[T]{array: c.array, offset: c.offset + offset, count: c.count - offset}, nil
}

func (c core[T]) sliceN(op string, offset, count int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if offset < 0 || offset > c.count {
		return core[T]{}, outOfRange(op, "offset", offset)
	}
	if count < 0 || count > c.count-offset {
		return core[T]{}, outOfRange(op, "count", count)
	}
	return core[T]{array: c.array, offset: c.offset + offset, count: count}, nil
}

func (c core[T]) sliceRange(op string, r longrange.Range) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	offset, count, err := r.OffsetAndLength(c.count)
	if err != nil {
		return core[T]{}, invalidSlice(op, err)
	}
	return core[T]{array: c.array, offset: c.offset + offset, count: count}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Clamped slicing
// ─────────────────────────────────────────────────────────────────────────────

func (c core[T]) clampCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	if n > c.count {
		return c.count
	}
	return n
}

func (c core[T]) skip(op string, n int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	n = c.clampCount(n)
	return core[T]{array: c.array, offset: c.offset + n, count: c.count - n}, nil
}

func (c core[T]) skipLast(op string, n int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	n = c.clampCount(n)
	return core[T]{array: c.array, offset: c.offset, count: c.count - n}, nil
}

func (c core[T]) take(op string, n int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	return core[T]{array: c.array, offset: c.offset, count: c.clampCount(n)}, nil
}

func (c core[T]) takeLast(op string, n int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	n = c.clampCount(n)
	return core[T]{array: c.array, offset: c.offset + c.count - n, count: n}, nil
}

// takeAt clamps like [longrange.Range.ClampedOffsetAndLength]: a negative
// offset shrinks count by the deficit.
func (c core[T]) takeAt(op string, offset, count int64) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if count < 0 {
		count = 0
	}
	if offset < 0 {
		count = max(count+offset, 0)
		offset = 0
	}
	if offset > c.count {
		offset = c.count
	}
	if count > c.count-offset {
		count = c.count - offset
	}
	return core[T]{array: c.array, offset: c.offset + offset, count: count}, nil
}

func (c core[T]) takeRange(op string, r longrange.Range) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	offset, count, err := r.ClampedOffsetAndLength(c.count)
	if err != nil {
		return core[T]{}, err
	}
	return core[T]{array: c.array, offset: c.offset + offset, count: count}, nil
}

// prefix returns the length of the leading run of elements satisfying pred.
func (c core[T]) prefix(pred func(T, int64) bool) int64 {
	var i int64
	for i < c.count && pred(c.array[c.offset+i], i) {
		i++
	}
	return i
}

func (c core[T]) skipWhile(op string, pred func(T, int64) bool) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if pred == nil {
		return core[T]{}, fmt.Errorf("%s: %w", op, ErrNilPredicate)
	}
	n := c.prefix(pred)
	return core[T]{array: c.array, offset: c.offset + n, count: c.count - n}, nil
}

func (c core[T]) takeWhile(op string, pred func(T, int64) bool) (core[T], error) {
	if c.isDefault() {
		return core[T]{}, defaultInstance(op)
	}
	if pred == nil {
		return core[T]{}, fmt.Errorf("%s: %w", op, ErrNilPredicate)
	}
	return core[T]{array: c.array, offset: c.offset, count: c.prefix(pred)}, nil
}

func byElement[T any](pred func(T) bool) func(T, int64) bool {
	if pred == nil {
		return nil
	}
	return func(v T, _ int64) bool { return pred(v) }
}

func byIndex[T any](pred func(T, int) bool) func(T, int64) bool {
	if pred == nil {
		return nil
	}
	return func(v T, i int64) bool { return pred(v, int(i)) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration, search & copy
// ─────────────────────────────────────────────────────────────────────────────

func (c core[T]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if c.isDefault() {
			return
		}
		for i, v := range c.window() {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c core[T]) backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if c.isDefault() {
			return
		}
		w := c.window()
		for i := len(w) - 1; i >= 0; i-- {
			if !yield(i, w[i]) {
				return
			}
		}
	}
}

func (c core[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.isDefault() {
			return
		}
		for _, v := range c.window() {
			if !yield(v) {
				return
			}
		}
	}
}

func (c core[T]) indexFunc(op string, pred func(T) bool) (int, error) {
	if c.isDefault() {
		return -1, defaultInstance(op)
	}
	if pred == nil {
		return -1, fmt.Errorf("%s: %w", op, ErrNilPredicate)
	}
	for i, v := range c.window() {
		if pred(v) {
			return i, nil
		}
	}
	return -1, nil
}

func (c core[T]) copyTo(op string, dst []T, at int) error {
	if c.isDefault() {
		return defaultInstance(op)
	}
	if dst == nil {
		return fmt.Errorf("%s: %w", op, ErrNilArray)
	}
	if at < 0 || at > len(dst) {
		return outOfRange(op, "at", int64(at))
	}
	if int64(len(dst)-at) < c.count {
		return outOfRange(op, "count", c.count)
	}
	copy(dst[at:], c.window())
	return nil
}

func (c core[T]) clone(op string) ([]T, error) {
	if c.isDefault() {
		return nil, defaultInstance(op)
	}
	out := make([]T, c.count)
	copy(out, c.window())
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Identity
// ─────────────────────────────────────────────────────────────────────────────

type identity[T any] struct {
	data   *T
	length int
	offset int64
	count  int64
}

func (c core[T]) identity() identity[T] {
	return identity[T]{
		data:   unsafe.SliceData(c.array),
		length: len(c.array),
		offset: c.offset,
		count:  c.count,
	}
}

// equal reports whether both cores are default, or both view the same
// backing array through the same window. Element contents are not compared.
func (c core[T]) equal(o core[T]) bool {
	if c.isDefault() || o.isDefault() {
		return c.isDefault() && o.isDefault()
	}
	return c.identity() == o.identity()
}

func (c core[T]) hash() uint64 {
	if c.isDefault() {
		return 0
	}
	return maphash.Comparable(hashSeed, c.identity())
}

func (c core[T]) String() string {
	if c.isDefault() {
		return "[]"
	}
	return fmt.Sprint(c.window())
}
