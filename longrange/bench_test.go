package longrange_test

import (
	"testing"

	"github.com/hasbyte1/go-arrayslice/longrange"
)

func BenchmarkRangeOffsetAndLength(b *testing.B) {
	r := longrange.New(longrange.MustFromStart(10), longrange.MustFromEnd(10))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.OffsetAndLength(10_000)
	}
}

func BenchmarkRangeClampedOffsetAndLength(b *testing.B) {
	r := longrange.New(longrange.MustFromEnd(20_000), longrange.MustFromStart(20_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = r.ClampedOffsetAndLength(10_000)
	}
}

func BenchmarkIndexOffset(b *testing.B) {
	idx := longrange.MustFromEnd(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = idx.Offset(10_000)
	}
}
