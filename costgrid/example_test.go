// File: costgrid/example_test.go
package costgrid_test

import (
	"fmt"

	"github.com/ternwave/gridnav/costgrid"
)

// ExampleFrom2D demonstrates building a cost grid from a 2D costmap and
// reading cells back by (x,y) index.
// Scenario:
//
//   - 0 = drivable, 5 = rough terrain, 10 = impassable (conventional threshold)
//   - Grid is 3 columns × 2 rows; X is the column, Y is the row.
func ExampleFrom2D() {
	g, _ := costgrid.From2D([][]float64{
		{0, 5, 0},
		{0, 10, 0},
	})

	fmt.Println("size:", g.Width, "x", g.Height)
	fmt.Println("rough at (1,0):", g.At(1, 0))
	fmt.Println("blocked at (1,1):", g.At(1, 1))

	// Output:
	// size: 3 x 2
	// rough at (1,0): 5
	// blocked at (1,1): 10
}
