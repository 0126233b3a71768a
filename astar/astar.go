// Package astar implements the grid A* search engine of the gridnav
// planner. See doc.go for the full contract.
package astar

import (
	"container/heap"
	"math"

	"github.com/ternwave/gridnav/costgrid"
	"github.com/ternwave/gridnav/inflate"
)

// neighborOffsets covers the 8-connected neighborhood: four orthogonal
// moves at cost 1, four diagonal moves at cost √2.
var neighborOffsets = [8]struct {
	dx, dy int
	cost   float64
}{
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	{1, -1, math.Sqrt2}, {1, 1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

// heuristic is the Manhattan distance |dx| + |dy|: an underestimate of the
// true remaining cost under this cost model, hence admissible.
func heuristic(a, b costgrid.Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// FindPath searches for a minimum-cost path from start to end over g.
//
// Behavior:
//  1. Validate inputs: nil grid → ErrNilGrid; empty grid → empty Path, nil
//     error; start/end outside bounds → ErrCoordOutOfBounds.
//  2. Build the inflated grid (skipped when SafetyRadius ≤ 0). The caller's
//     grid is never mutated.
//  3. Expand open-set nodes in ascending f until end is reached (path
//     reconstructed through predecessor links, start to end inclusive) or
//     the open set is exhausted (empty Path, nil error).
//
// A returned non-empty Path is 8-connected and never crosses a cell whose
// inflated cost reaches ObstacleThreshold.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func FindPath(g *costgrid.Grid, start, end costgrid.Coord, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if g.IsEmpty() {
		return Path{}, nil
	}
	if !g.InBounds(start.X, start.Y) || !g.InBounds(end.X, end.Y) {
		return nil, ErrCoordOutOfBounds
	}

	terrain := g
	if cfg.SafetyRadius > 0 {
		terrain = inflate.Inflate(g,
			inflate.WithSafetyRadius(cfg.SafetyRadius),
			inflate.WithObstacleThreshold(cfg.ObstacleThreshold),
		)
	}

	open := make(openHeap, 0, 64)
	heap.Init(&open)
	openByCoord := make(map[costgrid.Coord]*node)
	closed := make(map[costgrid.Coord]struct{})
	seq := 0

	startNode := &node{
		coord: start,
		g:     0,
		h:     heuristic(start, end),
		seq:   seq,
	}
	startNode.f = startNode.h
	heap.Push(&open, startNode)
	openByCoord[start] = startNode

	for open.Len() > 0 {
		current := heap.Pop(&open).(*node)
		delete(openByCoord, current.coord)

		if current.coord == end {
			return reconstruct(current), nil
		}

		// Finalize: this coordinate is never re-expanded, even if a cheaper
		// route to it appears later.
		closed[current.coord] = struct{}{}

		for _, off := range neighborOffsets {
			nc := costgrid.Coord{X: current.coord.X + off.dx, Y: current.coord.Y + off.dy}
			if !terrain.InBounds(nc.X, nc.Y) {
				continue
			}
			if _, done := closed[nc]; done {
				continue
			}
			cellCost := terrain.At(nc.X, nc.Y)
			if cellCost >= cfg.ObstacleThreshold {
				continue
			}

			tentativeG := current.g + off.cost + cellCost*cfg.TerrainWeight

			if existing, ok := openByCoord[nc]; ok {
				if existing.g <= tentativeG {
					continue // no improvement
				}
				existing.g = tentativeG
				existing.f = tentativeG + existing.h
				existing.parent = current
				heap.Fix(&open, existing.index)
				continue
			}

			seq++
			n := &node{
				coord:  nc,
				g:      tentativeG,
				h:      heuristic(nc, end),
				parent: current,
				seq:    seq,
			}
			n.f = n.g + n.h
			heap.Push(&open, n)
			openByCoord[nc] = n
		}
	}

	// Open set exhausted: no route. A normal outcome, not an error.
	return Path{}, nil
}

// reconstruct follows predecessor links from the goal node back to the
// start and reverses the result in place.
func reconstruct(goal *node) Path {
	var path Path
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.coord)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
