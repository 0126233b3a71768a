// Package inflate implements the obstacle-inflation pre-pass of the gridnav
// planner. See doc.go for the full contract.
package inflate

import (
	"math"

	"github.com/ternwave/gridnav/costgrid"
)

// Inflate returns a copy of g where every non-obstacle cell within
// Options.SafetyRadius (Euclidean) of an obstacle cell carries a graduated
// danger cost. The input grid is never mutated.
//
// Passthrough cases (the original grid is returned as-is, no allocation):
//   - SafetyRadius ≤ 0
//   - empty grid
//   - grid without a single obstacle cell
//
// For each remaining cell the new cost is
//
//	max(existing, round(costNear + (costFar-costNear) × d/r))
//
// where d is the distance to the nearest obstacle, capped strictly below
// ObstacleThreshold so inflation never manufactures obstacles. Obstacle
// cells themselves keep their original cost.
//
// Complexity: O(W×H × k log n); Memory: O(W×H + n).
func Inflate(g *costgrid.Grid, opts ...Option) *costgrid.Grid {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.SafetyRadius <= 0 || g.IsEmpty() {
		return g
	}

	idx := newObstacleIndex(g, cfg.ObstacleThreshold)
	if idx.size == 0 {
		return g
	}

	// Graduated costs stay strictly below the threshold; an integer band of
	// [costFar..costNear] under the default threshold 10 already does, the
	// cap only bites for unusually low thresholds.
	maxDanger := cfg.ObstacleThreshold - 1

	out := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) >= cfg.ObstacleThreshold {
				continue // obstacles keep their own cost
			}
			d, ok := idx.nearestWithin(x, y, cfg.SafetyRadius)
			if !ok {
				continue
			}
			danger := math.Round(costNear + (costFar-costNear)*(d/cfg.SafetyRadius))
			if danger > maxDanger {
				danger = maxDanger
			}
			if danger > out.At(x, y) {
				out.Set(x, y, danger)
			}
		}
	}

	return out
}
