// Package collections provides the structural helpers layered over
// [arrayslice]: content equality and hashing for sequences, a 2-D array
// adapter, and selector-based projections.
//
// # Identity versus contents
//
// Slices compare by identity ([arrayslice.ArraySlice.Equal]). This package
// compares by contents:
//
//	a, _ := arrayslice.New([]int{1, 2, 3})
//	b, _ := arrayslice.New([]int{1, 2, 3})
//	a.Equal(b)                                // false: different arrays
//	collections.SequenceEqual[int](a, b)      // true
//	collections.HashCode[int](a) == collections.HashCode[int](b) // true
//
// [Digest] produces a BLAKE2b-256 fingerprint that, unlike [HashCode], is
// stable across processes.
//
// # 2-D arrays
//
// [Array2D] stores a grid row-major in one flat array and hands out rows as
// zero-copy slices:
//
//	g, _ := collections.NewArray2D[float64](2, 3)
//	for r, row := range g.Rows() {
//	    _ = row.Set(0, float64(r))
//	}
//
// # Projections
//
// [Select] wraps a read-only slice with a selector, producing a read-only
// list that projects items lazily on access.
//
// Every helper accepts an [Enumerable], so the concrete slice type does not
// matter.
package collections
