// Package arrayslice provides value-type views over a window of a backing
// array: [ArraySlice] (mutable elements, fixed size) and [ReadOnly].
//
// # Creating a slice
//
//	s, _ := arrayslice.New([]int{0, 1, 2, 3, 4})            // whole array
//	s, _ := arrayslice.NewFrom(array, 2)                     // array[2:]
//	s, _ := arrayslice.NewWindow(array, 3, 3)                // array[3:6]
//	s, _ := arrayslice.NewRange(array, longrange.New(a, b))  // by Range
//
// # Zero copy
//
// Re-slicing returns a new value over the same backing array. Writes through
// a mutable slice land in the array and are visible through every other view
// of it:
//
//	s, _ := arrayslice.NewWindow(array, 3, 3)
//	_ = s.Set(1, 42) // array[4] == 42
//
// # Exact and clamped operations
//
// Slice, SliceN, SliceRange and TruncateAt fail with [ErrOutOfRange] (or
// [ErrInvalidSlice] for ranges) when the request does not fit. Skip,
// SkipLast, Take, TakeAt, TakeRange and TakeLast clamp the request instead
// and never fail on a valid slice. Pick the family that matches the failure
// policy you want.
//
// # Default values
//
// The zero value of a slice type has no backing array. It reports
// [ArraySlice.IsDefault], has length 0, and returns [ErrDefaultInstance] from
// element access, slicing and [ArraySlice.Enumerator].
//
// # Equality
//
// [ArraySlice.Equal] compares identity, not contents: two slices are equal
// only if they view the same array through the same window. Content
// comparison lives in the collections package.
//
// # Concurrency
//
// Slices hold no locks. Concurrent writes to a shared backing array must be
// synchronised by the caller.
package arrayslice
