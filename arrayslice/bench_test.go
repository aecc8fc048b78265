package arrayslice_test

import (
	"testing"

	"github.com/hasbyte1/go-arrayslice/arrayslice"
	"github.com/hasbyte1/go-arrayslice/longrange"
)

func makeSlice(n int) arrayslice.ArraySlice[int] {
	s, _ := arrayslice.New(seq(n))
	return s
}

func BenchmarkSliceRange(b *testing.B) {
	s := makeSlice(10_000)
	r := longrange.New(longrange.MustFromStart(10), longrange.MustFromEnd(10))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.SliceRange(r)
	}
}

func BenchmarkTakeAt(b *testing.B) {
	s := makeSlice(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.TakeAt(5_000, 20_000)
	}
}

func BenchmarkEnumerator(b *testing.B) {
	s := makeSlice(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := s.Enumerator()
		for e.MoveNext() {
			_, _ = e.Current()
		}
	}
}

func BenchmarkAll(b *testing.B) {
	s := makeSlice(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range s.All() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkAt(b *testing.B) {
	s := makeSlice(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.At(i % 10_000)
	}
}
