// Package costgrid defines the Grid and Coord types plus sentinel errors
// for the costgrid subpackage of github.com/ternwave/gridnav.
package costgrid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a negative width or height.
	ErrBadDimensions = errors.New("costgrid: width and height must be non-negative")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costgrid: all rows must have the same length")
)

// Coord identifies a single grid cell: X is the column, Y is the row.
// Coordinates are pure cell indices; translating to or from world units is
// the caller's concern.
type Coord struct {
	X, Y int
}

// Grid is a rectangular map of per-cell traversal costs, stored row-major
// in a flat slice. Width and Height are fixed at construction.
//
// The planner packages treat a Grid as read-only input; Set exists for grid
// producers (costmap updates) and must not be called concurrently with a
// planning call on the same Grid.
type Grid struct {
	Width, Height int
	cells         []float64
}
