// Package costgrid provides the rectangular terrain cost grid consumed by
// the gridnav planner packages.
//
// What:
//
//   - Grid stores per-cell traversal costs in a single flat, row-major
//     []float64, making the rectangular invariant structural rather than
//     assumed (no ragged rows possible after construction).
//   - Coord is an integer cell index (X = column, Y = row).
//   - Construction deep-copies caller data; a Grid handed to the planner is
//     never mutated by it.
//
// Cost semantics (by convention, enforced by consumers not by the grid):
//
//   - 0 — fully drivable
//   - low positive — rough terrain, traversable at a penalty
//   - ≥ obstacleThreshold — impassable (threshold belongs to the caller;
//     10 is the conventional default across gridnav)
//
// Why a flat array:
//
//   - Cache locality for row-major sweeps (inflation, search expansion).
//   - Index/Coordinate give O(1) conversion between (x,y) and flat offsets.
//
// Errors:
//
//   - ErrBadDimensions: negative width or height at construction.
//   - ErrNonRectangular: rows of differing length in From2D/FromInt2D.
//
// A 0×0 grid is valid: degenerate inputs flow through the planner as an
// empty result, not an error.
package costgrid
