package hint

import (
	"context"
	"fmt"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// Singles suggests naked singles: cells whose candidate notes have exactly
// one member after the givens are placed.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order, if any. The
// puzzle's givens are placed on a scratch board, so the caller's state is
// never touched.
func (h *Singles) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	b, err := board.FromPuzzle(p)
	if err != nil {
		return domain.Hint{}, false, err
	}
	b.InitNotes()
	size := b.Size()
	for r := 1; r <= size; r++ {
		for c := 1; c <= size; c++ {
			if b.Value(r, c) != 0 || b.NoteCount(r, c) != 1 {
				continue
			}
			for v := 1; v <= size; v++ {
				if b.HasNote(r, c, v) {
					return domain.Hint{
						Message: fmt.Sprintf("single: only %d fits here", v),
						Cell:    domain.CellCoord{Row: r, Col: c},
						Val:     v,
					}, true, nil
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}
