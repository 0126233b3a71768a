// Package gridnav is a cost-aware grid path planner for simulated ground
// vehicles: obstacle inflation, A* search and obstacle-safe path smoothing
// over rectangular terrain cost grids.
//
// What gridnav provides:
//
//   - costgrid/ — flat, row-major cost grids with cell semantics
//     0 = drivable, low positive = rough terrain, ≥ threshold = impassable
//   - inflate/  — circular obstacle inflation with graduated danger costs
//   - astar/    — 8-connected A* with diagonal movement and terrain weighting
//   - smooth/   — iterative path smoothing that never rests on an obstacle
//   - traverse/ — coarse traversability costmaps from terrain class masks
//   - planner/  — FindPath + Smooth wired back-to-back for the common case
//
// Why gridnav?
//
//   - Pure computation — no rendering, no I/O, no wire protocol: a grid and
//     two coordinates in, a drivable path out
//   - Stateless — every call allocates its own search state, so independent
//     goroutines may plan concurrently over a shared, unmutated grid
//   - Predictable failure — "no route" is an empty path, not an error;
//     invalid coordinates are a distinct sentinel error
//
// Typical flow:
//
//	Cost Grid → inflate → A* → raw path → smooth (against the
//	original, non-inflated grid) → final trajectory
//
// Dive into the per-package docs for contracts, invariants and complexity.
package gridnav
