package costgrid

import "fmt"

// New constructs a zeroed width×height Grid.
// Returns ErrBadDimensions if either dimension is negative.
// Zero-area grids are valid and yield IsEmpty() == true.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]float64, width*height),
	}, nil
}

// From2D constructs a Grid from a rectangular 2D slice, deep-copying the
// input so later caller mutations cannot leak into a planning call.
// An empty input (no rows, or rows of zero length) yields a valid 0×0 grid.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func From2D(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return &Grid{}, nil
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, cells: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], values[y])
	}

	return g, nil
}

// FromInt2D constructs a Grid from a rectangular 2D slice of integer costs,
// the format emitted by coarse costmap producers. Same contract as From2D.
func FromInt2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return &Grid{}, nil
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, cells: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = float64(values[y][x])
		}
	}

	return g, nil
}

// IsEmpty reports whether the grid has zero area.
// Complexity: O(1).
func (g *Grid) IsEmpty() bool {
	return g == nil || g.Width == 0 || g.Height == 0
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cost stored at (x,y).
// Out-of-bounds access panics, matching slice-index semantics; callers on
// untrusted coordinates must check InBounds first.
// Complexity: O(1).
func (g *Grid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("costgrid: At(%d,%d) out of bounds for %dx%d grid", x, y, g.Width, g.Height))
	}
	return g.cells[y*g.Width+x]
}

// Set writes cost at (x,y). Out-of-bounds access panics.
// Complexity: O(1).
func (g *Grid) Set(x, y int, cost float64) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("costgrid: Set(%d,%d) out of bounds for %dx%d grid", x, y, g.Width, g.Height))
	}
	g.cells[y*g.Width+x] = cost
}

// Index maps (x,y) to its row-major flat offset: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major flat offset back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(W×H) time and memory.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]float64, len(g.cells))}
	copy(out.cells, g.cells)

	return out
}
