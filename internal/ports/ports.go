package ports

import (
	"context"
	"time"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int // guesses explored by the backtracking search
	Duration time.Duration
}

// Solver runs the constraint engine over a board, mutating it in place.
// The context is the caller-imposed bound on runtime; a canceled solve
// returns the context's error rather than a solve status.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (domain.SolveStatus, Stats, error)
}

// Validator performs fast duplicate checks (row/col/box) on a raw grid.
type Validator interface {
	Validate(ctx context.Context, grid [][]int) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter finds the next forced placement for a puzzle, if one exists.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
