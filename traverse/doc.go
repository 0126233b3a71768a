// Package traverse turns per-pixel terrain classifications into the coarse
// cost grids the gridnav planner consumes.
//
// What:
//
//   - Category classifies terrain qualitatively: Go, Caution, NoGo, Sky.
//     Costs follow the planner convention: Go=0, Caution=5, NoGo=10
//     (at the conventional obstacle threshold of 10, NoGo cells are
//     impassable and Caution cells are rough but drivable).
//   - BuildCostmap aggregates a class mask into a small costmap: the top
//     sky band is dropped, the remaining ground portion is divided into
//     GridCols × GridRows cells, and each cell is scored by the fraction
//     of blocked and caution pixels it contains.
//   - Stats summarizes a mask into safe/caution/blocked percentages over
//     ground (non-sky) pixels.
//
// Why:
//
//   - The planner's upstream is a terrain-classification model emitting a
//     class id per pixel; this package is the bridge between that mask and
//     costgrid.Grid, keeping the 0/5/10 cost convention in one place.
//
// The class-to-category mapping is supplied by the caller (or
// DefaultClassCategories for the stock ten-class terrain model).
//
// Errors:
//
//   - ErrEmptyMask: mask has no rows or no columns.
//   - ErrRaggedMask: mask rows differ in length.
//   - ErrUnknownClass: a class id missing from the category mapping.
//
// Complexity: O(pixels) time, O(GridCols×GridRows) memory.
package traverse
