// Package traverse implements the traversability costmap producer feeding
// the gridnav planner. See doc.go for the full contract.
package traverse

import "github.com/ternwave/gridnav/costgrid"

// BuildCostmap aggregates a per-pixel class mask into a coarse costmap.
//
// The top SkyFraction of mask rows is dropped (sky band), the remaining
// ground portion is split into GridCols × GridRows cells, and each cell is
// scored from its pixel mix:
//
//	no-go share > BlockedFraction   → CostNoGo   (10)
//	caution share > CautionFraction → CostCaution (5)
//	otherwise                       → CostGo      (0)
//
// Sky pixels inside the ground band count toward no category; a cell of
// pure sky scores CostGo.
//
// Complexity: O(pixels) time, O(GridCols×GridRows) memory.
func BuildCostmap(mask [][]int, opts ...Option) (*costgrid.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyMask
	}
	w := len(mask[0])
	for _, row := range mask {
		if len(row) != w {
			return nil, ErrRaggedMask
		}
	}

	groundStart := int(float64(len(mask)) * cfg.SkyFraction)
	ground := mask[groundStart:]
	gh, gw := len(ground), w

	cellH := gh / cfg.GridRows
	if cellH < 1 {
		cellH = 1
	}
	cellW := gw / cfg.GridCols
	if cellW < 1 {
		cellW = 1
	}

	out, err := costgrid.New(cfg.GridCols, cfg.GridRows)
	if err != nil {
		return nil, err
	}

	for r := 0; r < cfg.GridRows; r++ {
		y0 := r * cellH
		y1 := (r + 1) * cellH
		if y1 > gh {
			y1 = gh
		}
		for c := 0; c < cfg.GridCols; c++ {
			x0 := c * cellW
			x1 := (c + 1) * cellW
			if x1 > gw {
				x1 = gw
			}

			var goCount, cautionCount, noGoCount int
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					cat, ok := cfg.Classes[ground[y][x]]
					if !ok {
						return nil, ErrUnknownClass
					}
					switch cat {
					case Go:
						goCount++
					case Caution:
						cautionCount++
					case NoGo:
						noGoCount++
					}
				}
			}

			total := goCount + cautionCount + noGoCount
			switch {
			case total == 0:
				out.Set(c, r, CostGo)
			case float64(noGoCount)/float64(total) > cfg.BlockedFraction:
				out.Set(c, r, CostNoGo)
			case float64(cautionCount)/float64(total) > cfg.CautionFraction:
				out.Set(c, r, CostCaution)
			default:
				out.Set(c, r, CostGo)
			}
		}
	}

	return out, nil
}

// Stats summarizes traversability over the ground (non-sky) pixels of a
// class mask as safe/caution/blocked percentages. A mask without ground
// pixels yields all zeros.
type Stats struct {
	Safe    float64 // percentage of ground pixels classified Go
	Caution float64 // percentage classified Caution
	Blocked float64 // percentage classified NoGo
}

// ComputeStats scans the whole mask (no sky-band cropping; sky pixels are
// excluded by category instead).
// Returns ErrEmptyMask, ErrRaggedMask or ErrUnknownClass on bad input.
// Complexity: O(pixels).
func ComputeStats(mask [][]int, classes map[int]Category) (Stats, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return Stats{}, ErrEmptyMask
	}
	w := len(mask[0])
	if classes == nil {
		classes = DefaultClassCategories()
	}

	var safe, caution, blocked, ground int
	for _, row := range mask {
		if len(row) != w {
			return Stats{}, ErrRaggedMask
		}
		for _, id := range row {
			cat, ok := classes[id]
			if !ok {
				return Stats{}, ErrUnknownClass
			}
			switch cat {
			case Go:
				safe++
			case Caution:
				caution++
			case NoGo:
				blocked++
			case Sky:
				continue
			}
			ground++
		}
	}

	if ground == 0 {
		return Stats{}, nil
	}
	pct := func(n int) float64 { return float64(n) / float64(ground) * 100 }

	return Stats{Safe: pct(safe), Caution: pct(caution), Blocked: pct(blocked)}, nil
}
