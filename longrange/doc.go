// Package longrange provides 64-bit index and range values that can be
// anchored at either end of a collection, together with the arithmetic that
// resolves them against a concrete collection length.
//
// # Index
//
// An [Index] counts either from the start or from the end:
//
//	i := longrange.MustFromStart(2)   // "2"
//	j := longrange.MustFromEnd(1)     // "^1", the last element
//	off, _ := j.Offset(10)            // 9
//
// # Range
//
// A [Range] pairs an inclusive start with an exclusive end:
//
//	r := longrange.New(longrange.MustFromStart(1), longrange.MustFromEnd(1)) // 1..^1
//	off, n, _ := r.OffsetAndLength(4) // 1, 2
//
// # Exact and clamped resolution
//
// Two method families resolve ranges, and the caller picks the failure
// policy by picking the family:
//
//   - Exact ([Range.Offset], [Range.Length], [Range.OffsetAndLength]) returns
//     [ErrOutOfRange] or [ErrDegenerateRange] for anything that does not fit.
//   - Clamped ([Range.ClampedOffset], [Range.ClampedLength],
//     [Range.ClampedOffsetAndLength]) constrains the result to the collection
//     and only fails for a negative length.
//
// Numeric failures are reported as [*ArgumentError] values that unwrap to
// the package sentinels.
package longrange
