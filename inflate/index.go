package inflate

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/ternwave/gridnav/costgrid"
)

// pointTolerance is the side length of the degenerate rectangle that
// represents an obstacle cell's center in the R-tree.
const pointTolerance = 0.01

// obstacleEntry wraps one obstacle cell for R-tree storage.
type obstacleEntry struct {
	coord costgrid.Coord
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.rect
}

// obstacleIndex answers "how far is the nearest obstacle?" queries during
// inflation. It holds every obstacle cell of one grid in a 2-D R-tree.
type obstacleIndex struct {
	tree *rtreego.Rtree
	size int
}

// newObstacleIndex collects all cells of g with cost ≥ threshold.
// Complexity: O(W×H + n log n) for n obstacle cells.
func newObstacleIndex(g *costgrid.Grid, threshold float64) *obstacleIndex {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) < threshold {
				continue
			}
			p := rtreego.Point{float64(x), float64(y)}
			tree.Insert(&obstacleEntry{
				coord: costgrid.Coord{X: x, Y: y},
				rect:  p.ToRect(pointTolerance),
			})
			size++
		}
	}

	return &obstacleIndex{tree: tree, size: size}
}

// nearestWithin returns the Euclidean distance from (x,y) to the closest
// indexed obstacle, if one lies within radius. The search intersects a
// ±radius box and filters candidates by exact distance, so the effective
// footprint is circular.
func (idx *obstacleIndex) nearestWithin(x, y int, radius float64) (float64, bool) {
	box, err := rtreego.NewRect(
		rtreego.Point{float64(x) - radius, float64(y) - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return 0, false
	}

	best := math.Inf(1)
	for _, item := range idx.tree.SearchIntersect(box) {
		obs := item.(*obstacleEntry).coord
		dx := float64(x - obs.X)
		dy := float64(y - obs.Y)
		if d := math.Hypot(dx, dy); d < best {
			best = d
		}
	}
	if best > radius {
		return 0, false
	}

	return best, true
}
