// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/ternwave/gridnav/astar"
	"github.com/ternwave/gridnav/costgrid"
)

// ExampleFindPath demonstrates routing across an obstacle-free 5×5 grid.
// Scenario:
//
//   - All cells cost 0, start (0,0), goal (4,4).
//   - Diagonal moves cost √2, so the optimal route is the pure diagonal:
//     4 diagonal steps, 5 points including both endpoints.
func ExampleFindPath() {
	g, _ := costgrid.New(5, 5)

	path, _ := astar.FindPath(g, costgrid.Coord{X: 0, Y: 0}, costgrid.Coord{X: 4, Y: 4})

	fmt.Println("points:", len(path))
	for _, c := range path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	// Output:
	// points: 5
	// (0,0) (1,1) (2,2) (3,3) (4,4)
}

// ExampleFindPath_noRoute demonstrates that an unreachable goal is a normal
// outcome: an empty path with a nil error, not a failure.
func ExampleFindPath_noRoute() {
	g, _ := costgrid.From2D([][]float64{
		{0, 10, 0},
		{10, 10, 0},
		{0, 0, 0},
	})

	path, err := astar.FindPath(g,
		costgrid.Coord{X: 0, Y: 0}, costgrid.Coord{X: 2, Y: 2},
		astar.WithSafetyRadius(0),
	)

	fmt.Println("err:", err)
	fmt.Println("points:", len(path))
	// Output:
	// err: <nil>
	// points: 0
}
