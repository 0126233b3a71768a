// Package inflate expands impassable cells of a cost grid outward by a
// safety radius, writing graduated "danger" costs into nearby cells so the
// search engine keeps the vehicle clear of obstacle edges.
//
// What:
//
//   - Inflate builds a derived, independent copy of the input grid.
//   - Every cell within true Euclidean distance ≤ SafetyRadius of an
//     obstacle cell (cost ≥ ObstacleThreshold) receives a graduated cost:
//     ≈8 touching the obstacle, falling linearly to ≈5 at the radius edge,
//     rounded to the nearest integer.
//   - Overlapping inflation zones combine via max, not sum: the nearest
//     obstacle dominates.
//
// Invariants:
//
//   - Inflation never lowers a cell's cost.
//   - A non-obstacle cell is never promoted to obstacle status: graduated
//     costs are capped strictly below ObstacleThreshold.
//   - The input grid is never mutated; callers rely on the original grid
//     for post-search safety checks.
//
// The radius test uses true Euclidean distance between cell indices, so the
// inflation footprint is circular, not a square box. Obstacle cells are
// indexed in a 2-D R-tree; each candidate cell queries a ±radius box and
// filters candidates by exact distance.
//
// SafetyRadius ≤ 0, an empty grid, or a grid with no obstacles at all is a
// passthrough: the original grid is returned without allocation.
//
// Complexity: O(W×H × k log n) where n = obstacle count and k = obstacles
// inside a cell's query box; memory O(W×H + n).
package inflate
