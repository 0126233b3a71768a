package costgrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternwave/gridnav/costgrid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_BadDimensions verifies that negative dimensions are rejected.
func TestNew_BadDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"NegativeWidth", -1, 3},
		{"NegativeHeight", 3, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.New(tc.w, tc.h)
			if !errors.Is(err, costgrid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
		})
	}
}

// TestNew_ZeroArea verifies that 0×0 grids are valid degenerate inputs.
func TestNew_ZeroArea(t *testing.T) {
	g, err := costgrid.New(0, 0)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty(), "0x0 grid must report IsEmpty")
}

// TestFrom2D_Errors verifies rejection of ragged input and acceptance of
// empty input as a 0×0 grid.
func TestFrom2D_Errors(t *testing.T) {
	_, err := costgrid.From2D([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, costgrid.ErrNonRectangular)

	g, err := costgrid.From2D(nil)
	require.NoError(t, err, "empty input is a valid degenerate grid")
	assert.True(t, g.IsEmpty())
}

// TestFrom2D_DeepCopy ensures mutating the source slice after construction
// does not leak into the grid.
func TestFrom2D_DeepCopy(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	g, err := costgrid.From2D(src)
	require.NoError(t, err)

	src[0][0] = 99
	assert.Equal(t, 1.0, g.At(0, 0), "grid must deep-copy its input")
}

// TestFromInt2D verifies integer costmap conversion.
func TestFromInt2D(t *testing.T) {
	g, err := costgrid.FromInt2D([][]int{{0, 5}, {10, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 5.0, g.At(1, 0))
	assert.Equal(t, 10.0, g.At(0, 1))

	_, err = costgrid.FromInt2D([][]int{{1}, {2, 3}})
	assert.ErrorIs(t, err, costgrid.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestInBounds checks boundary classification on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := costgrid.New(3, 2)
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestAt_PanicsOutOfBounds verifies the slice-index panic contract.
func TestAt_PanicsOutOfBounds(t *testing.T) {
	g, err := costgrid.New(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, 1) })
}

// TestIndexCoordinate_RoundTrip verifies row-major index conversion.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := costgrid.New(4, 3)
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			gx, gy := g.Coordinate(idx)
			if gx != x || gy != y {
				t.Fatalf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

// TestClone_Independent verifies Clone yields an independent copy.
func TestClone_Independent(t *testing.T) {
	g, err := costgrid.From2D([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := g.Clone()
	c.Set(0, 0, 42)
	assert.Equal(t, 1.0, g.At(0, 0), "mutating the clone must not touch the original")
	assert.Equal(t, 42.0, c.At(0, 0))
}
