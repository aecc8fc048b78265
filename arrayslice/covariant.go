package arrayslice

import (
	"fmt"
	"iter"
	"reflect"
)

// Covariant views a slice of C elements as a slice of B elements, where B is
// an interface type C implements. It shares the backing array of the slice
// it was made from.
//
// Reads convert each element to B. Writes accept a B only if its dynamic
// type is C (or it is nil), returning [ErrTypeMismatch] otherwise, so the
// backing array never holds a value of the wrong type.
type Covariant[B any] struct {
	elems    elements[B]
	readOnly bool
}

type elements[B any] interface {
	length() int64
	get(i int64) B
	put(i int64, v B) error
	sub(offset, count int64) elements[B]
}

type childElements[B, C any] struct {
	c core[C]
}

func (e childElements[B, C]) length() int64 { return e.c.count }

func (e childElements[B, C]) get(i int64) B {
	b, _ := any(e.c.array[e.c.offset+i]).(B)
	return b
}

func (e childElements[B, C]) put(i int64, v B) error {
	var c C
	if any(v) != nil {
		var ok bool
		if c, ok = any(v).(C); !ok {
			return fmt.Errorf("Covariant.Set: %T: %w", v, ErrTypeMismatch)
		}
	}
	e.c.array[e.c.offset+i] = c
	return nil
}

func (e childElements[B, C]) sub(offset, count int64) elements[B] {
	return childElements[B, C]{c: core[C]{array: e.c.array, offset: e.c.offset + offset, count: count}}
}

// FromChild returns a writable [Covariant] view of s with element type B.
//
// Returns [ErrInvalidConversion] unless B is an interface type and C is a
// pointer or interface type implementing B. A default s yields a default
// Covariant.
func FromChild[B, C any](s ArraySlice[C]) (Covariant[B], error) {
	return fromChild[B]("arrayslice.FromChild", s.c, false)
}

// ReadOnlyFromChild is [FromChild] for a read-only slice; the resulting view
// rejects writes with [ErrUnsupported].
func ReadOnlyFromChild[B, C any](s ReadOnly[C]) (Covariant[B], error) {
	return fromChild[B]("arrayslice.ReadOnlyFromChild", s.c, true)
}

func fromChild[B, C any](op string, c core[C], readOnly bool) (Covariant[B], error) {
	base, child := reflect.TypeFor[B](), reflect.TypeFor[C]()
	if base.Kind() != reflect.Interface {
		return Covariant[B]{}, fmt.Errorf("%s: %v is not an interface: %w", op, base, ErrInvalidConversion)
	}
	if k := child.Kind(); k != reflect.Pointer && k != reflect.Interface {
		return Covariant[B]{}, fmt.Errorf("%s: %v is not a reference type: %w", op, child, ErrInvalidConversion)
	}
	if !child.Implements(base) {
		return Covariant[B]{}, fmt.Errorf("%s: %v does not implement %v: %w", op, child, base, ErrInvalidConversion)
	}
	if c.isDefault() {
		return Covariant[B]{readOnly: readOnly}, nil
	}
	return Covariant[B]{elems: childElements[B, C]{c: c}, readOnly: readOnly}, nil
}

// IsDefault reports whether v views no array.
func (v Covariant[B]) IsDefault() bool { return v.elems == nil }

// IsReadOnly reports whether writes are rejected.
func (v Covariant[B]) IsReadOnly() bool { return v.readOnly }

// Len returns the number of elements, 0 for a default view.
func (v Covariant[B]) Len() int {
	if v.elems == nil {
		return 0
	}
	return int(v.elems.length())
}

// At returns element i converted to B.
func (v Covariant[B]) At(i int) (B, error) {
	var zero B
	if err := v.check("Covariant.At", int64(i)); err != nil {
		return zero, err
	}
	return v.elems.get(int64(i)), nil
}

// Set stores b at position i of the backing array.
// Returns [ErrTypeMismatch] if b's dynamic type is not the array's element
// type and [ErrUnsupported] for a read-only view.
func (v Covariant[B]) Set(i int, b B) error {
	if v.readOnly {
		return unsupported("Covariant.Set")
	}
	if err := v.check("Covariant.Set", int64(i)); err != nil {
		return err
	}
	return v.elems.put(int64(i), b)
}

// SliceN returns count elements starting at offset, sharing the backing
// array. Returns [ErrOutOfRange] unless the window lies inside v.
func (v Covariant[B]) SliceN(offset, count int) (Covariant[B], error) {
	const op = "Covariant.SliceN"
	if v.elems == nil {
		return Covariant[B]{}, defaultInstance(op)
	}
	n := v.elems.length()
	if offset < 0 || int64(offset) > n {
		return Covariant[B]{}, outOfRange(op, "offset", int64(offset))
	}
	if count < 0 || int64(count) > n-int64(offset) {
		return Covariant[B]{}, outOfRange(op, "count", int64(count))
	}
	return Covariant[B]{elems: v.elems.sub(int64(offset), int64(count)), readOnly: v.readOnly}, nil
}

// All yields each position and converted element in order.
func (v Covariant[B]) All() iter.Seq2[int, B] {
	return func(yield func(int, B) bool) {
		if v.elems == nil {
			return
		}
		for i := int64(0); i < v.elems.length(); i++ {
			if !yield(int(i), v.elems.get(i)) {
				return
			}
		}
	}
}

func (v Covariant[B]) check(op string, i int64) error {
	if v.elems == nil {
		return defaultInstance(op)
	}
	if i < 0 || i >= v.elems.length() {
		return outOfRange(op, "index", i)
	}
	return nil
}
