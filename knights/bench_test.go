package knights_test

import (
	"testing"

	"github.com/katalvlaran/statespace/knights"
)

// BenchmarkSuccessors measures move generation on a six-piece formation.
func BenchmarkSuccessors(b *testing.B) {
	s := knights.MustNew(loc(0, 0), loc(0, 1), loc(0, 2), loc(1, 0), loc(1, 1), loc(1, 2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Successors()
	}
}

// BenchmarkKey measures canonical key computation.
func BenchmarkKey(b *testing.B) {
	s := knights.MustNew(loc(3, 3), loc(4, 5), loc(7, 0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Key()
	}
}
