package validator

import (
	"context"
	"fmt"
	"math"

	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// Fast performs duplicate scans over rows, columns, and boxes of a raw
// grid. It never mutates its input.
type Fast struct{}

func New() *Fast { return &Fast{} }

// Validate reports every cell whose value duplicates an earlier one in its
// row, column, or box. The grid must be square with a perfect-square side;
// values are 1..len(grid), 0 for empty. Malformed grids are errors, not
// conflicts.
func (v *Fast) Validate(ctx context.Context, grid [][]int) (bool, []domain.CellCoord, error) {
	size := len(grid)
	side := int(math.Sqrt(float64(size)))
	if size == 0 || side*side != size {
		return false, nil, fmt.Errorf("validator: grid side %d is not a positive perfect square", size)
	}
	for r, row := range grid {
		if len(row) != size {
			return false, nil, fmt.Errorf("validator: row %d has %d cells, want %d", r+1, len(row), size)
		}
		for c, val := range row {
			if val < 0 || val > size {
				return false, nil, fmt.Errorf("validator: value %d at (%d,%d) out of range 0..%d", val, r+1, c+1, size)
			}
		}
	}

	conf := make([]domain.CellCoord, 0, 8)
	seen := make([]bool, size+1)
	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}

	for r := 0; r < size; r++ {
		reset()
		for c := 0; c < size; c++ {
			if val := grid[r][c]; val != 0 {
				if seen[val] {
					conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
				}
				seen[val] = true
			}
		}
	}
	for c := 0; c < size; c++ {
		reset()
		for r := 0; r < size; r++ {
			if val := grid[r][c]; val != 0 {
				if seen[val] {
					conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
				}
				seen[val] = true
			}
		}
	}
	for br := 0; br < side; br++ {
		for bc := 0; bc < side; bc++ {
			reset()
			for dr := 0; dr < side; dr++ {
				for dc := 0; dc < side; dc++ {
					r, c := br*side+dr, bc*side+dc
					if val := grid[r][c]; val != 0 {
						if seen[val] {
							conf = append(conf, domain.CellCoord{Row: r + 1, Col: c + 1})
						}
						seen[val] = true
					}
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
