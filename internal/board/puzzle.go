package board

import (
	"fmt"
	"math"

	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// FromPuzzle places a puzzle's givens on a fresh board. User-supplied
// puzzles are range-checked here so the board's panicking contract is never
// tripped by bad input; a given that repeats a cell or conflicts with an
// earlier one is an error.
func FromPuzzle(p *domain.Puzzle) (*Board, error) {
	side := int(math.Sqrt(float64(p.Size)))
	if p.Size <= 0 || side*side != p.Size {
		return nil, fmt.Errorf("board: puzzle size %d is not a positive perfect square", p.Size)
	}
	b := New(p.Size)
	for _, g := range p.Givens {
		if g.Row < 1 || g.Row > p.Size || g.Col < 1 || g.Col > p.Size || g.Val < 1 || g.Val > p.Size {
			return nil, fmt.Errorf("board: given %d at (%d,%d) out of range 1..%d", g.Val, g.Row, g.Col, p.Size)
		}
		switch b.Insert(g.Row, g.Col, g.Val) {
		case domain.InsertAlreadyFilled:
			return nil, fmt.Errorf("board: cell (%d,%d) given twice", g.Row, g.Col)
		case domain.InsertConflict:
			return nil, fmt.Errorf("board: given %d at (%d,%d) conflicts with its row, column, or box", g.Val, g.Row, g.Col)
		}
	}
	return b, nil
}
