package solver

import (
	"context"
	"time"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
	"github.com/MarcoCalabretta/sudoku/internal/ports"
)

// Engine solves boards by running constraint propagation to fixpoint and,
// when propagation stalls, branching on the cell with the fewest remaining
// candidates. It mutates the board it is given; callers wanting the pristine
// pre-solve state must clone first, since an unsolvable run does not roll
// back placements made before the contradiction surfaced.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, b *board.Board) (domain.SolveStatus, ports.Stats, error) {
	start := time.Now()
	// Candidate notes are derived exactly once per solve; everything after
	// this lives off Insert's retraction-maintained notes, including every
	// recursive search step.
	b.InitNotes()
	s := &search{ctx: ctx}
	status, err := s.solve(b)
	return status, ports.Stats{Nodes: s.nodes, Duration: time.Since(start)}, err
}

type search struct {
	ctx   context.Context
	nodes int
}

// solve propagates to fixpoint and branches on stall. Recursion depth is
// bounded by the number of empty cells: every level places at least one
// value before recursing.
func (s *search) solve(b *board.Board) (domain.SolveStatus, error) {
	if err := s.ctx.Err(); err != nil {
		return domain.Unsolvable, err
	}
	switch propagate(b) {
	case propSolved:
		return domain.Solved, nil
	case propContradiction:
		return domain.Unsolvable, nil
	}
	return s.branch(b)
}
