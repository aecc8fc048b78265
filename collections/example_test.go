package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/collections"
)

func ExampleSequenceEqual() {
	a, _ := arrayslice.New([]int{1, 2, 3})
	b, _ := arrayslice.New([]int{1, 2, 3})
	fmt.Println(a.Equal(b), collections.SequenceEqual[int](a, b))
	// Output: false true
}

func ExampleArray2D_Row() {
	g, _ := collections.Wrap2D([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	row, _ := g.Row(1)
	_ = row.Set(0, 40)
	v, _ := g.At(1, 0)
	fmt.Println(row, v)
	// Output: [40 5 6] 40
}

func ExampleSelect() {
	src, _ := arrayslice.NewReadOnly([]string{"go", "rust", "zig"})
	lengths, _ := collections.Select(src, func(s string) int { return len(s) })
	for _, n := range lengths.All() {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output: 2 4 3
}
