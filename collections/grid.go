package collections

import (
	"fmt"
	"iter"
	"math"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/longrange"
)

// Array2D is a rows×cols grid stored row-major in one flat backing array.
//
// Rows are exposed as [arrayslice.ArraySlice] views over the flat array, so
// reading or writing a row never copies:
//
//	g, _ := collections.NewArray2D[int](3, 4)
//	row, _ := g.Row(1)
//	_ = row.Set(2, 7) // g.At(1, 2) == 7
type Array2D[T any] struct {
	flat []T
	rows int
	cols int
}

// NewArray2D allocates a zeroed rows×cols grid.
// Returns [ErrOutOfRange] for negative dimensions and
// [longrange.ErrOverflow] if rows*cols does not fit in an int.
func NewArray2D[T any](rows, cols int) (Array2D[T], error) {
	const op = "collections.NewArray2D"
	if err := checkDims(op, rows, cols); err != nil {
		return Array2D[T]{}, err
	}
	return Array2D[T]{flat: make([]T, rows*cols), rows: rows, cols: cols}, nil
}

// Wrap2D views flat as a rows×cols grid without copying.
// Returns [arrayslice.ErrNilArray] if flat is nil and [ErrDimensionMismatch]
// if len(flat) != rows*cols.
func Wrap2D[T any](flat []T, rows, cols int) (Array2D[T], error) {
	const op = "collections.Wrap2D"
	if flat == nil {
		return Array2D[T]{}, fmt.Errorf("%s: %w", op, arrayslice.ErrNilArray)
	}
	if err := checkDims(op, rows, cols); err != nil {
		return Array2D[T]{}, err
	}
	if len(flat) != rows*cols {
		return Array2D[T]{}, fmt.Errorf("%s: %d items for %dx%d: %w", op, len(flat), rows, cols, ErrDimensionMismatch)
	}
	return Array2D[T]{flat: flat, rows: rows, cols: cols}, nil
}

func checkDims(op string, rows, cols int) error {
	if rows < 0 {
		return outOfRange(op, "rows", rows)
	}
	if cols < 0 {
		return outOfRange(op, "cols", cols)
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return &longrange.ArgumentError{Op: op, Param: "rows", Value: int64(rows), Err: longrange.ErrOverflow}
	}
	return nil
}

// Dims returns the number of rows and columns.
func (g Array2D[T]) Dims() (rows, cols int) { return g.rows, g.cols }

// At returns the item at row r, column c.
func (g Array2D[T]) At(r, c int) (T, error) {
	i, err := g.index("Array2D.At", r, c)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.flat[i], nil
}

// Set stores v at row r, column c.
func (g Array2D[T]) Set(r, c int, v T) error {
	i, err := g.index("Array2D.Set", r, c)
	if err != nil {
		return err
	}
	g.flat[i] = v
	return nil
}

func (g Array2D[T]) index(op string, r, c int) (int, error) {
	if r < 0 || r >= g.rows {
		return 0, outOfRange(op, "row", r)
	}
	if c < 0 || c >= g.cols {
		return 0, outOfRange(op, "col", c)
	}
	return r*g.cols + c, nil
}

// Row returns row r as a slice over the grid's backing array.
func (g Array2D[T]) Row(r int) (arrayslice.ArraySlice[T], error) {
	if r < 0 || r >= g.rows {
		return arrayslice.ArraySlice[T]{}, outOfRange("Array2D.Row", "row", r)
	}
	return arrayslice.NewWindow(g.flat, r*g.cols, g.cols)
}

// Rows yields every row in order.
func (g Array2D[T]) Rows() iter.Seq2[int, arrayslice.ArraySlice[T]] {
	return func(yield func(int, arrayslice.ArraySlice[T]) bool) {
		for r := 0; r < g.rows; r++ {
			row, err := g.Row(r)
			if err != nil || !yield(r, row) {
				return
			}
		}
	}
}

// Flat returns the whole grid, row after row, as one slice.
func (g Array2D[T]) Flat() (arrayslice.ArraySlice[T], error) {
	return arrayslice.New(g.flat)
}

// Equal2D reports whether a and b have the same dimensions and items.
func Equal2D[T comparable](a, b Array2D[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	fa, errA := a.Flat()
	fb, errB := b.Flat()
	if errA != nil || errB != nil {
		return errA != nil && errB != nil
	}
	return SequenceEqual[T](fa, fb)
}
