package arrayslice

import (
	"fmt"
	"slices"
)

// List is the indexed-collection contract satisfied by [ArraySlice] and
// [ReadOnly]. Size-changing methods always return [ErrUnsupported]; Set and
// Clear do too on read-only views.
type List[T any] interface {
	Len() int
	At(i int) (T, error)
	Set(i int, v T) error
	Add(v T) error
	Insert(i int, v T) error
	RemoveAt(i int) error
	Clear() error
	IsReadOnly() bool
}

var (
	_ List[int] = ArraySlice[int]{}
	_ List[int] = ReadOnly[int]{}
)

// View is implemented by [ArraySlice] and [ReadOnly]. It lets the search
// functions below accept either.
type View[T any] interface {
	IsDefault() bool
	Len() int
	view() core[T]
}

// Segment is a backing array together with the window a slice views.
type Segment[T any] struct {
	Array  []T
	Offset int
	Count  int
}

// Items returns Array[Offset : Offset+Count].
func (g Segment[T]) Items() []T {
	return g.Array[g.Offset : g.Offset+g.Count]
}

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

// Contains reports whether v occurs in the window of s.
// Returns [ErrDefaultInstance] for a default slice.
func Contains[T comparable](s View[T], v T) (bool, error) {
	i, err := IndexOf(s, v)
	return i >= 0, err
}

// IndexOf returns the window position of the first occurrence of v, or -1.
func IndexOf[T comparable](s View[T], v T) (int, error) {
	c := s.view()
	if c.isDefault() {
		return -1, defaultInstance("arrayslice.IndexOf")
	}
	return slices.Index(c.window(), v), nil
}

// LastIndexOf returns the window position of the last occurrence of v, or -1.
func LastIndexOf[T comparable](s View[T], v T) (int, error) {
	c := s.view()
	if c.isDefault() {
		return -1, defaultInstance("arrayslice.LastIndexOf")
	}
	w := c.window()
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] == v {
			return i, nil
		}
	}
	return -1, nil
}
