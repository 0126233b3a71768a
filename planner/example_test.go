// File: planner/example_test.go
package planner_test

import (
	"fmt"

	"github.com/ternwave/gridnav/costgrid"
	"github.com/ternwave/gridnav/planner"
)

// ExamplePlan demonstrates the full pipeline on a small terrain grid with
// one blocked cell on the straight line.
// Scenario:
//
//   - 5×5 grid, cost 10 at (2,2), inflation disabled for a tight detour.
//   - Raw path detours around the blocked cell; smoothing rounds off the
//     detour corner without touching the endpoints.
func ExamplePlan() {
	g, _ := costgrid.New(5, 5)
	g.Set(2, 2, 10)

	res, _ := planner.Plan(g,
		costgrid.Coord{X: 0, Y: 0}, costgrid.Coord{X: 4, Y: 4},
		planner.WithSafetyRadius(0),
	)

	fmt.Println("raw points:", len(res.Raw))
	fmt.Println("smoothed points:", len(res.Smoothed))
	fmt.Printf("start (%.0f,%.0f) goal (%.0f,%.0f)\n",
		res.Smoothed[0][0], res.Smoothed[0][1],
		res.Smoothed[len(res.Smoothed)-1][0], res.Smoothed[len(res.Smoothed)-1][1])

	// Output:
	// raw points: 6
	// smoothed points: 6
	// start (0,0) goal (4,4)
}
