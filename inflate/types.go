// Package inflate defines configuration options for obstacle inflation.
package inflate

// Graduated cost band written into cells near obstacles: costNear at
// distance ≈ 0, falling linearly to costFar at the radius edge.
const (
	costNear = 8.0
	costFar  = 5.0
)

// Options configures obstacle inflation.
//
// SafetyRadius      – inflation distance in cells (Euclidean). ≤ 0 disables
// inflation entirely (passthrough). Default 2.
// ObstacleThreshold – cost at or above which a cell is impassable. Must be
// > 0. Default 10.
type Options struct {
	SafetyRadius      float64
	ObstacleThreshold float64
}

// Option is a functional option for configuring Inflate.
type Option func(*Options)

// WithSafetyRadius sets the inflation radius in cells. Zero or negative
// turns inflation into a passthrough.
func WithSafetyRadius(r float64) Option {
	return func(o *Options) {
		o.SafetyRadius = r
	}
}

// WithObstacleThreshold sets the impassability threshold.
// Must be positive; non-positive values panic (invalid configuration is a
// programmer error, caught at option-application time).
func WithObstacleThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			panic("inflate: ObstacleThreshold must be positive")
		}
		o.ObstacleThreshold = t
	}
}

// DefaultOptions returns the conventional gridnav defaults:
// SafetyRadius=2, ObstacleThreshold=10.
func DefaultOptions() Options {
	return Options{
		SafetyRadius:      2,
		ObstacleThreshold: 10,
	}
}
