package inflate_test

import (
	"math/rand"
	"testing"

	"github.com/ternwave/gridnav/costgrid"
	"github.com/ternwave/gridnav/inflate"
)

// BenchmarkInflate measures inflation on a 500×500 grid with ~1% obstacle
// density and the default radius.
func BenchmarkInflate(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	g, err := costgrid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < n*n/100; i++ {
		g.Set(rng.Intn(n), rng.Intn(n), 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inflate.Inflate(g)
	}
}
