// Package astar defines the Path type, configuration options and sentinel
// errors for the astar subpackage of github.com/ternwave/gridnav.
package astar

import (
	"errors"

	"github.com/ternwave/gridnav/costgrid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates a nil *costgrid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCoordOutOfBounds indicates start or end lies outside the grid.
	// Distinct from the empty "no route" Path so callers never conflate
	// invalid input with a legitimately unreachable goal.
	ErrCoordOutOfBounds = errors.New("astar: coordinate out of grid bounds")
)

// Path is an ordered sequence of grid coordinates from start to end
// inclusive. A Path of length 0 denotes "no path found".
type Path []costgrid.Coord

// Options configures the A* search.
//
// ObstacleThreshold – inflated cost at or above which a cell is impassable.
// Must be > 0. Default 10.
// SafetyRadius      – obstacle inflation radius applied before searching;
// ≤ 0 skips inflation. Default 2.
// TerrainWeight     – multiplier turning a cell's inflated cost into a move
// penalty. Must be ≥ 0. Default 0.8.
type Options struct {
	ObstacleThreshold float64
	SafetyRadius      float64
	TerrainWeight     float64
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// WithObstacleThreshold sets the impassability threshold.
// Must be positive; non-positive values panic.
func WithObstacleThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			panic("astar: ObstacleThreshold must be positive")
		}
		o.ObstacleThreshold = t
	}
}

// WithSafetyRadius sets the obstacle inflation radius applied before the
// search. Zero or negative skips the inflation pre-pass.
func WithSafetyRadius(r float64) Option {
	return func(o *Options) {
		o.SafetyRadius = r
	}
}

// WithTerrainWeight sets the terrain penalty multiplier.
// Must be non-negative; negative values panic (a negative penalty would
// break heuristic admissibility).
func WithTerrainWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			panic("astar: TerrainWeight must be non-negative")
		}
		o.TerrainWeight = w
	}
}

// DefaultOptions returns the conventional gridnav defaults:
// ObstacleThreshold=10, SafetyRadius=2, TerrainWeight=0.8.
func DefaultOptions() Options {
	return Options{
		ObstacleThreshold: 10,
		SafetyRadius:      2,
		TerrainWeight:     0.8,
	}
}
