package arrayslice_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/longrange"
)

func ExampleNewWindow() {
	array := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s, _ := arrayslice.NewWindow(array, 3, 3)

	v, _ := s.At(1)
	last, _ := s.AtIndex(longrange.MustFromEnd(1))
	fmt.Println(s, v, last)

	_ = s.Set(1, 1)
	fmt.Println(array[4])
	// Output:
	// [3 4 5] 4 5
	// 1
}

func ExampleArraySlice_TakeAt() {
	s, _ := arrayslice.New([]int{3, 4, 5, 6})
	t, _ := s.TakeAt(1, 10)
	fmt.Println(t)

	_, err := s.SliceN(1, 10)
	fmt.Println(errors.Is(err, arrayslice.ErrOutOfRange))
	// Output:
	// [4 5 6]
	// true
}

func ExampleArraySlice_SliceRange() {
	s, _ := arrayslice.New([]string{"a", "b", "c", "d"})
	mid, _ := s.SliceRange(longrange.New(longrange.MustFromStart(1), longrange.MustFromEnd(1)))
	fmt.Println(mid)
	// Output: [b c]
}

func ExampleArraySlice_Enumerator() {
	s, _ := arrayslice.New([]string{"x", "y"})
	e, _ := s.Enumerator()
	for e.MoveNext() {
		v, _ := e.Current()
		fmt.Println(v)
	}
	// Output:
	// x
	// y
}

func ExampleArraySlice_IsDefault() {
	var s arrayslice.ArraySlice[int]
	_, err := s.At(0)
	fmt.Println(s.IsDefault(), errors.Is(err, arrayslice.ErrDefaultInstance))
	// Output: true true
}
