package astar_test

import (
	"math/rand"
	"testing"

	"github.com/ternwave/gridnav/astar"
	"github.com/ternwave/gridnav/costgrid"
)

// BenchmarkFindPath measures a corner-to-corner search on a 200×200 grid
// with ~5% obstacle density and default inflation.
func BenchmarkFindPath(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := costgrid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < n*n/20; i++ {
		x, y := rng.Intn(n), rng.Intn(n)
		if (x < 2 && y < 2) || (x > n-3 && y > n-3) {
			continue
		}
		g.Set(x, y, 10)
	}
	start := costgrid.Coord{X: 0, Y: 0}
	end := costgrid.Coord{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, start, end)
	}
}
