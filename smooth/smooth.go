// Package smooth implements the path-smoothing post-pass of the gridnav
// planner. See doc.go for the full contract.
package smooth

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"

	"github.com/ternwave/gridnav/costgrid"
)

// Smooth converts a raw cell path into fractional waypoints and applies
// iterative local averaging:
//
//	new = current + Weight × (prev + next − 2×current)   per axis
//
// Endpoints are never altered, point count is preserved exactly, and paths
// of fewer than 3 points are returned unchanged. With Options.Grid set, a
// candidate position whose nearest cell is in bounds and at or above
// ObstacleThreshold reverts that point to its original (pre-smoothing)
// position for good, so the output never rests on an obstacle cell.
//
// Complexity: O(Iterations × n) time, O(n) memory.
func Smooth(path []costgrid.Coord, opts ...Option) []orb.Point {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	original := toPoints(path)
	if len(original) < 3 || cfg.Iterations == 0 {
		return original
	}

	smoothed := make([]orb.Point, len(original))
	copy(smoothed, original)

	for it := 0; it < cfg.Iterations; it++ {
		for i := 1; i < len(smoothed)-1; i++ {
			prev, cur, next := smoothed[i-1], smoothed[i], smoothed[i+1]
			candidate := orb.Point{
				cur[0] + cfg.Weight*(prev[0]+next[0]-2*cur[0]),
				cur[1] + cfg.Weight*(prev[1]+next[1]-2*cur[1]),
			}

			if cfg.Grid != nil {
				cx := int(math.Round(candidate[0]))
				cy := int(math.Round(candidate[1]))
				if cfg.Grid.InBounds(cx, cy) && cfg.Grid.At(cx, cy) >= cfg.ObstacleThreshold {
					// Revert to the pre-smoothing position, not the
					// previous-iteration one: a jagged vertex beats a
					// waypoint on an obstacle.
					smoothed[i] = original[i]
					continue
				}
			}
			smoothed[i] = candidate
		}
	}

	return smoothed
}

// Decimate drops near-collinear waypoints using Douglas-Peucker with the
// given tolerance (in cells). Unlike Smooth it reduces the point count;
// endpoints always survive. Inputs of fewer than 3 points are returned
// as-is.
func Decimate(pts []orb.Point, epsilon float64) []orb.Point {
	if len(pts) < 3 {
		return pts
	}
	ls := orb.LineString(pts)
	s := simplify.DouglasPeucker(epsilon).Simplify(ls.Clone())
	out, ok := s.(orb.LineString)
	if !ok {
		return pts
	}

	return []orb.Point(out)
}

// Length returns the total planar length of a waypoint sequence, in cells.
func Length(pts []orb.Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += planar.Distance(pts[i-1], pts[i])
	}

	return total
}

// toPoints lifts integer cell coordinates into fractional waypoints.
func toPoints(path []costgrid.Coord) []orb.Point {
	pts := make([]orb.Point, len(path))
	for i, c := range path {
		pts[i] = orb.Point{float64(c.X), float64(c.Y)}
	}

	return pts
}
