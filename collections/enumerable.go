package collections

import (
	"iter"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
)

// Enumerable is the read-only, indexed sequence the helpers in this package
// operate on.
//
// [arrayslice.ArraySlice], [arrayslice.ReadOnly], [arrayslice.Covariant] and
// [Selected] all satisfy it, as do the rows of an [Array2D]. Wrap a plain Go
// slice with [arrayslice.NewReadOnly].
type Enumerable[T any] interface {
	// Len returns the number of items.
	Len() int

	// At returns the item at position i, or an error if i is outside
	// [0, Len()).
	At(i int) (T, error)

	// All yields every position and item in order.
	All() iter.Seq2[int, T]
}

var (
	_ Enumerable[int] = arrayslice.ArraySlice[int]{}
	_ Enumerable[int] = arrayslice.ReadOnly[int]{}
	_ Enumerable[any] = arrayslice.Covariant[any]{}
	_ Enumerable[int] = Selected[string, int]{}
)
