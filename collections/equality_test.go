package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) arrayslice.ArraySlice[int] {
	s, err := arrayslice.New(append([]int{}, ns...))
	if err != nil {
		panic(err)
	}
	return s
}

func strs(ss ...string) arrayslice.ReadOnly[string] {
	s, err := arrayslice.NewReadOnly(ss)
	if err != nil {
		panic(err)
	}
	return s
}

func bytesOf(s string) []byte { return []byte(s) }

// ─────────────────────────────────────────────────────────────────────────────
// SequenceEqual
// ─────────────────────────────────────────────────────────────────────────────

func TestSequenceEqual(t *testing.T) {
	a := ints(1, 2, 3)
	b := ints(1, 2, 3)
	require.False(t, a.Equal(b), "identity equality must not look at contents")
	assert.True(t, collections.SequenceEqual[int](a, b))
	assert.True(t, collections.SequenceEqual[int](a, b.ReadOnly()))

	assert.False(t, collections.SequenceEqual[int](a, ints(1, 2)))
	assert.False(t, collections.SequenceEqual[int](a, ints(1, 2, 4)))
	assert.True(t, collections.SequenceEqual[int](ints(), arrayslice.ArraySlice[int]{}))
}

func TestSequenceEqualWindows(t *testing.T) {
	array := []int{9, 1, 2, 9, 1, 2}
	x, _ := arrayslice.NewWindow(array, 1, 2)
	y, _ := arrayslice.NewWindow(array, 4, 2)
	assert.False(t, x.Equal(y))
	assert.True(t, collections.SequenceEqual[int](x, y))
}

func TestSequenceEqualFunc(t *testing.T) {
	words := strs("Go", "Rust")
	lower := strs("go", "rust")
	assert.True(t, collections.SequenceEqualFunc[string, string](words, lower, strings.EqualFold))
	assert.False(t, collections.SequenceEqual[string](words, lower))

	lengths := ints(2, 4)
	assert.True(t, collections.SequenceEqualFunc[string, int](words, lengths,
		func(s string, n int) bool { return len(s) == n }))
}

// ─────────────────────────────────────────────────────────────────────────────
// Hashing
// ─────────────────────────────────────────────────────────────────────────────

func TestHashCode(t *testing.T) {
	assert.Equal(t, collections.HashCode[int](ints(1, 2, 3)), collections.HashCode[int](ints(1, 2, 3)))
	assert.NotEqual(t, collections.HashCode[int](ints(1, 2, 3)), collections.HashCode[int](ints(3, 2, 1)))
	assert.NotEqual(t, collections.HashCode[int](ints()), collections.HashCode[int](ints(0)))
}

func TestDigest(t *testing.T) {
	d1 := collections.Digest[string](strs("ab", "c"), bytesOf)
	d2 := collections.Digest[string](strs("ab", "c"), bytesOf)
	d3 := collections.Digest[string](strs("a", "bc"), bytesOf)
	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3, "item boundaries are part of the digest")
	assert.Len(t, d1, 32)
}
