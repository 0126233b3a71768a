// Package smooth defines configuration options for path smoothing.
package smooth

import "github.com/ternwave/gridnav/costgrid"

// Options configures Smooth.
//
// Iterations        – number of averaging passes. Must be ≥ 0. Default 2.
// Weight            – pull toward the neighbor average per pass; 0 leaves
// the path untouched, values near 1 converge aggressively. Default 0.3.
// Grid              – optional original (non-inflated) grid for the
// obstacle check. nil disables the check. Default nil.
// ObstacleThreshold – cost at or above which a rounded cell rejects a
// smoothing update. Must be > 0. Default 10.
type Options struct {
	Iterations        int
	Weight            float64
	Grid              *costgrid.Grid
	ObstacleThreshold float64
}

// Option is a functional option for configuring Smooth.
type Option func(*Options)

// WithIterations sets the number of averaging passes.
// Must be non-negative; negative values panic.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("smooth: Iterations must be non-negative")
		}
		o.Iterations = n
	}
}

// WithWeight sets the averaging weight.
func WithWeight(w float64) Option {
	return func(o *Options) {
		o.Weight = w
	}
}

// WithGrid supplies the original, non-inflated grid for the obstacle
// check. The smoother consults this grid, never an inflated copy, so the
// guarantee is against real obstacles rather than safety margins.
func WithGrid(g *costgrid.Grid) Option {
	return func(o *Options) {
		o.Grid = g
	}
}

// WithObstacleThreshold sets the impassability threshold used by the
// obstacle check. Must be positive; non-positive values panic.
func WithObstacleThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			panic("smooth: ObstacleThreshold must be positive")
		}
		o.ObstacleThreshold = t
	}
}

// DefaultOptions returns the conventional gridnav defaults:
// Iterations=2, Weight=0.3, no grid check, ObstacleThreshold=10.
func DefaultOptions() Options {
	return Options{
		Iterations:        2,
		Weight:            0.3,
		Grid:              nil,
		ObstacleThreshold: 10,
	}
}
