// Package traverse defines terrain categories, costs, options and sentinel
// errors for the traverse subpackage of github.com/ternwave/gridnav.
package traverse

import "errors"

// Sentinel errors for costmap construction.
var (
	// ErrEmptyMask indicates the class mask has no rows or no columns.
	ErrEmptyMask = errors.New("traverse: class mask must have at least one row and one column")
	// ErrRaggedMask indicates mask rows of differing lengths.
	ErrRaggedMask = errors.New("traverse: all mask rows must have the same length")
	// ErrUnknownClass indicates a class id absent from the category mapping.
	ErrUnknownClass = errors.New("traverse: class id not present in category mapping")
)

// Category is the qualitative traversability of a terrain class.
type Category int

const (
	// Go terrain is fully drivable.
	Go Category = iota
	// Caution terrain is rough but drivable at a penalty.
	Caution
	// NoGo terrain is impassable.
	NoGo
	// Sky is not terrain at all; sky pixels are excluded from ground
	// statistics and the costmap's ground band.
	Sky
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Go:
		return "go"
	case Caution:
		return "caution"
	case NoGo:
		return "no_go"
	case Sky:
		return "sky"
	default:
		return "unknown"
	}
}

// Costmap cell costs per category, matching the planner-wide convention of
// an obstacle threshold at 10.
const (
	CostGo      = 0.0
	CostCaution = 5.0
	CostNoGo    = 10.0
)

// CostFor maps a category to its costmap cell cost. Sky carries no cost of
// its own; sky pixels are handled by exclusion, not by cost.
func CostFor(c Category) float64 {
	switch c {
	case Caution:
		return CostCaution
	case NoGo:
		return CostNoGo
	default:
		return CostGo
	}
}

// DefaultClassCategories returns the mapping for the stock ten-class
// terrain model.
func DefaultClassCategories() map[int]Category {
	return map[int]Category{
		0: NoGo,    // Trees
		1: NoGo,    // Lush Bushes
		2: Go,      // Dry Grass
		3: Caution, // Dry Bushes
		4: Caution, // Ground Clutter
		5: Go,      // Flowers
		6: NoGo,    // Logs
		7: Caution, // Rocks
		8: Go,      // Landscape
		9: Sky,     // Sky
	}
}

// Options configures BuildCostmap.
//
// GridCols, GridRows – costmap dimensions. Must be > 0. Defaults 12×8.
// SkyFraction        – fraction of the mask's top rows dropped as sky
// before aggregation. Must be in [0,1). Default 0.35.
// BlockedFraction    – a cell whose no-go pixel share exceeds this becomes
// an obstacle (CostNoGo). Default 0.3.
// CautionFraction    – failing that, a caution share above this makes the
// cell rough (CostCaution). Default 0.3.
// Classes            – class-to-category mapping. Defaults to
// DefaultClassCategories().
type Options struct {
	GridCols        int
	GridRows        int
	SkyFraction     float64
	BlockedFraction float64
	CautionFraction float64
	Classes         map[int]Category
}

// Option is a functional option for configuring BuildCostmap.
type Option func(*Options)

// WithGridSize sets the costmap dimensions.
// Both must be positive; invalid values panic.
func WithGridSize(cols, rows int) Option {
	return func(o *Options) {
		if cols <= 0 || rows <= 0 {
			panic("traverse: grid dimensions must be positive")
		}
		o.GridCols = cols
		o.GridRows = rows
	}
}

// WithSkyFraction sets the share of top mask rows dropped as sky.
// Must be in [0,1); invalid values panic.
func WithSkyFraction(f float64) Option {
	return func(o *Options) {
		if f < 0 || f >= 1 {
			panic("traverse: SkyFraction must be in [0,1)")
		}
		o.SkyFraction = f
	}
}

// WithClasses sets the class-to-category mapping.
func WithClasses(classes map[int]Category) Option {
	return func(o *Options) {
		o.Classes = classes
	}
}

// DefaultOptions returns the stock producer configuration: a 12×8 costmap
// over the bottom 65% of the mask, 0.3 scoring fractions, default classes.
func DefaultOptions() Options {
	return Options{
		GridCols:        12,
		GridRows:        8,
		SkyFraction:     0.35,
		BlockedFraction: 0.3,
		CautionFraction: 0.3,
		Classes:         DefaultClassCategories(),
	}
}
