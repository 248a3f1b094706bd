package usecase

import (
	"context"
	"errors"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
	"github.com/MarcoCalabretta/sudoku/internal/ports"
)

// Service is the facade both adapters (HTTP, CLI) drive.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolvePuzzle builds a board from the puzzle's givens and solves it in
// place, returning the board alongside the outcome so callers can render
// the result grid.
func (u *Service) SolvePuzzle(ctx context.Context, p *domain.Puzzle) (*board.Board, domain.SolveStatus, ports.Stats, error) {
	if u.Solver == nil {
		return nil, domain.Unsolvable, ports.Stats{}, errNotConfigured
	}
	b, err := board.FromPuzzle(p)
	if err != nil {
		return nil, domain.Unsolvable, ports.Stats{}, err
	}
	status, st, err := u.Solver.Solve(ctx, b)
	return b, status, st, err
}

func (u *Service) Validate(ctx context.Context, grid [][]int) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, grid)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
