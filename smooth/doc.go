// Package smooth refines a raw cell-sequence path into a less jagged
// trajectory of fractional waypoints, without ever letting a waypoint rest
// on an obstacle cell.
//
// What:
//
//   - Smooth applies iterative local averaging: each interior point is
//     nudged toward the mean of its neighbors by a configurable weight,
//     for a configurable number of iterations. Endpoints never move, and
//     the point count is preserved exactly.
//   - When a grid is supplied, every candidate position is rounded to its
//     nearest cell and checked against the ORIGINAL, non-inflated grid; a
//     candidate landing on an obstacle reverts that point to its original
//     pre-smoothing position. The output therefore never rests on an
//     obstacle cell, at the cost of an occasional jagged vertex next to
//     obstacles.
//   - Decimate (optional, separate from Smooth) drops near-collinear
//     waypoints via Douglas-Peucker; unlike Smooth it reduces the point
//     count. Length sums planar segment lengths of a waypoint sequence.
//
// Waypoints are orb.Points: X/Y in fractional grid cells, converted to
// world units by the path consumer.
//
// Paths shorter than 3 points are returned unchanged, point for point.
//
// Complexity: Smooth O(iterations × n); Decimate O(n log n) typical;
// memory O(n).
package smooth
