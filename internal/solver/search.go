package solver

import (
	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// branch guesses its way past a stall. Each attempt clones the board,
// inserts the guess into the clone, and solves the clone recursively. A
// solved clone is committed back wholesale; a dead end retracts the guessed
// candidate in this board's notes so it is never retried, then re-selects
// against the shifted state.
func (s *search) branch(b *board.Board) (domain.SolveStatus, error) {
	for {
		row, col, val, ok := nextGuess(b)
		if !ok {
			return domain.Unsolvable, nil
		}
		s.nodes++
		scratch := b.Clone()
		scratch.Insert(row, col, val)
		status, err := s.solve(scratch)
		if err != nil {
			return domain.Unsolvable, err
		}
		if status == domain.Solved {
			b.CopyFrom(scratch)
			return domain.Solved, nil
		}
		b.RemoveNote(row, col, val)
	}
}

// nextGuess selects the first cell with the fewest remaining candidates
// (ascending candidate count, then row-major order) and its smallest
// candidate. ok is false when some empty cell has no candidates at all,
// meaning the board is unsolvable as it stands. Propagation has already
// consumed naked singles, so in practice branching starts at two candidates.
func nextGuess(b *board.Board) (row, col, val int, ok bool) {
	size := b.Size()
	for k := 1; k <= size; k++ {
		for r := 1; r <= size; r++ {
			for c := 1; c <= size; c++ {
				if b.Value(r, c) != 0 {
					continue
				}
				switch n := b.NoteCount(r, c); {
				case n == 0:
					return 0, 0, 0, false
				case n != k:
					continue
				}
				for v := 1; v <= size; v++ {
					if b.HasNote(r, c, v) {
						return r, c, v, true
					}
				}
			}
		}
	}
	return 0, 0, 0, false
}
