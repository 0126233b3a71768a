// Package planner wires the gridnav pipeline end to end for the common
// case: inflate → A* → smooth, in one call.
//
// What:
//
//   - Plan runs astar.FindPath over the supplied grid and, unless
//     smoothing is disabled, feeds the raw path to smooth.Smooth using the
//     same original grid and a shared obstacle threshold for the safety
//     check — the smoother deliberately consults the non-inflated grid.
//   - Result carries both the raw integer-cell path and the smoothed
//     fractional trajectory; "no route" is an empty Result with nil error.
//
// Why:
//
//   - The two core operations are almost always invoked back-to-back with
//     a shared threshold convention; keeping that wiring in one place
//     prevents callers smoothing against the wrong (inflated) grid.
//
// Plan is as stateless as its parts: concurrent calls over a shared,
// unmutated grid are safe.
package planner
