package longrange_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

func ExampleIndex_Offset() {
	last := longrange.MustFromEnd(1)
	off, _ := last.Offset(10)
	fmt.Println(last, off)
	// Output: ^1 9
}

func ExampleRange_OffsetAndLength() {
	r := longrange.New(longrange.MustFromStart(1), longrange.MustFromEnd(1))
	off, n, _ := r.OffsetAndLength(4)
	fmt.Println(r, off, n)
	// Output: 1..^1 1 2
}

func ExampleRange_ClampedOffsetAndLength() {
	r := longrange.New(longrange.MustFromStart(1), longrange.MustFromStart(10))
	_, _, err := r.OffsetAndLength(4)
	fmt.Println(errors.Is(err, longrange.ErrOutOfRange))

	off, n, _ := r.ClampedOffsetAndLength(4)
	fmt.Println(off, n)
	// Output:
	// true
	// 1 3
}

func ExampleRange_IsDegenerate() {
	fmt.Println(longrange.New(longrange.MustFromStart(4), longrange.MustFromStart(3)).IsDegenerate())
	fmt.Println(longrange.New(longrange.MustFromStart(1), longrange.MustFromEnd(1)).IsDegenerate())
	// Output:
	// true
	// false
}
