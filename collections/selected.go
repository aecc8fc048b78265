package collections

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
)

// Selected is a read-only list that projects each item of a source slice
// through a selector on access. Nothing is copied or precomputed: the
// selector runs every time an item is read, so writes to the source's
// backing array show through.
type Selected[S, T any] struct {
	src      arrayslice.ReadOnly[S]
	selector func(S) T
}

// Select returns a projection of src through selector.
// Returns [ErrNilSelector] if selector is nil.
//
//	names, _ := collections.Select(users, func(u User) string { return u.Name })
func Select[S, T any](src arrayslice.ReadOnly[S], selector func(S) T) (Selected[S, T], error) {
	if selector == nil {
		return Selected[S, T]{}, fmt.Errorf("collections.Select: %w", ErrNilSelector)
	}
	return Selected[S, T]{src: src, selector: selector}, nil
}

// Len returns the number of items in the source.
func (p Selected[S, T]) Len() int { return p.src.Len() }

// At returns the selector applied to source item i.
func (p Selected[S, T]) At(i int) (T, error) {
	v, err := p.src.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.selector(v), nil
}

// All yields every position and projected item in order.
func (p Selected[S, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range p.src.All() {
			if !yield(i, p.selector(v)) {
				return
			}
		}
	}
}

// SliceN returns the projection of count source items starting at offset.
func (p Selected[S, T]) SliceN(offset, count int) (Selected[S, T], error) {
	src, err := p.src.SliceN(offset, count)
	if err != nil {
		return Selected[S, T]{}, err
	}
	return Selected[S, T]{src: src, selector: p.selector}, nil
}

// Source returns the slice being projected.
func (p Selected[S, T]) Source() arrayslice.ReadOnly[S] { return p.src }
