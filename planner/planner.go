// Package planner implements the one-call planning pipeline of gridnav.
// See doc.go for the full contract.
package planner

import (
	"github.com/paulmach/orb"

	"github.com/ternwave/gridnav/astar"
	"github.com/ternwave/gridnav/costgrid"
	"github.com/ternwave/gridnav/smooth"
)

// Result is the outcome of one planning call.
//
// Raw is the integer-cell path produced by the search (start to end
// inclusive); Smoothed is its fractional refinement, nil when smoothing is
// disabled. An empty Raw means no route exists.
type Result struct {
	Raw      astar.Path
	Smoothed []orb.Point
}

// Options configures Plan. Search fields mirror astar, smoothing fields
// mirror smooth; ObstacleThreshold is shared by both stages.
type Options struct {
	ObstacleThreshold float64
	SafetyRadius      float64
	TerrainWeight     float64
	SmoothIterations  int
	SmoothWeight      float64
	Smoothing         bool
}

// Option is a functional option for configuring Plan.
type Option func(*Options)

// WithObstacleThreshold sets the shared impassability threshold for both
// the search and the smoothing safety check. Must be positive; non-positive
// values panic.
func WithObstacleThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			panic("planner: ObstacleThreshold must be positive")
		}
		o.ObstacleThreshold = t
	}
}

// WithSafetyRadius sets the obstacle inflation radius for the search stage;
// ≤ 0 skips inflation.
func WithSafetyRadius(r float64) Option {
	return func(o *Options) {
		o.SafetyRadius = r
	}
}

// WithTerrainWeight sets the search's terrain penalty multiplier.
// Must be non-negative; negative values panic.
func WithTerrainWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			panic("planner: TerrainWeight must be non-negative")
		}
		o.TerrainWeight = w
	}
}

// WithSmoothing sets smoothing pass parameters.
// Iterations must be non-negative; negative values panic.
func WithSmoothing(iterations int, weight float64) Option {
	return func(o *Options) {
		if iterations < 0 {
			panic("planner: smoothing iterations must be non-negative")
		}
		o.SmoothIterations = iterations
		o.SmoothWeight = weight
		o.Smoothing = true
	}
}

// WithoutSmoothing disables the smoothing stage; Result.Smoothed is nil.
func WithoutSmoothing() Option {
	return func(o *Options) {
		o.Smoothing = false
	}
}

// DefaultOptions returns the conventional gridnav defaults: threshold 10,
// radius 2, terrain weight 0.8, smoothing on with 2 passes at weight 0.3.
func DefaultOptions() Options {
	return Options{
		ObstacleThreshold: 10,
		SafetyRadius:      2,
		TerrainWeight:     0.8,
		SmoothIterations:  2,
		SmoothWeight:      0.3,
		Smoothing:         true,
	}
}

// Plan searches g for a route from start to end and smooths it.
//
// Errors propagate from the search stage (nil grid, out-of-bounds
// coordinates). No route is a normal outcome: Result with empty Raw, nil
// Smoothed slice of length 0, and a nil error.
//
// The smoothing safety check runs against g itself — the original,
// non-inflated grid — so smoothed waypoints avoid real obstacles, not
// inflation margins.
func Plan(g *costgrid.Grid, start, end costgrid.Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := astar.FindPath(g, start, end,
		astar.WithObstacleThreshold(cfg.ObstacleThreshold),
		astar.WithSafetyRadius(cfg.SafetyRadius),
		astar.WithTerrainWeight(cfg.TerrainWeight),
	)
	if err != nil {
		return Result{}, err
	}

	res := Result{Raw: raw}
	if !cfg.Smoothing || len(raw) == 0 {
		return res, nil
	}

	res.Smoothed = smooth.Smooth(raw,
		smooth.WithIterations(cfg.SmoothIterations),
		smooth.WithWeight(cfg.SmoothWeight),
		smooth.WithGrid(g),
		smooth.WithObstacleThreshold(cfg.ObstacleThreshold),
	)

	return res, nil
}
