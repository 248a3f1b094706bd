package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
	"github.com/MarcoCalabretta/sudoku/internal/infrastructure/storage"
	"github.com/MarcoCalabretta/sudoku/internal/solver"
)

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		b   *board.Board
		err error
	)
	if solveFile != "" {
		b, err = boardFromFile(solveFile)
	} else {
		b, err = promptPuzzle()
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	eng := solver.NewEngine()
	status, st, err := eng.Solve(ctx, b)
	if err != nil {
		return fmt.Errorf("solve aborted: %w", err)
	}

	fmt.Println(renderGrid(b.Grid()))
	fmt.Printf("%s in %v (%d guesses)\n", status, st.Duration.Round(time.Millisecond), st.Nodes)
	return nil
}

func boardFromFile(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p domain.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return board.FromPuzzle(&p)
}

// promptPuzzle asks for a board size, then clue placements one at a time
// until the user enters 0. Each clue is inserted immediately and its raw
// status reported, so a conflicting clue can be corrected on the spot.
func promptPuzzle() (*board.Board, error) {
	size, err := promptSize()
	if err != nil {
		return nil, err
	}
	b := board.New(size)
	var givens []domain.Clue
	for {
		val, err := promptNumber("Value (0 to start solving)", 0, size)
		if err != nil {
			return nil, err
		}
		if val == 0 {
			break
		}
		row, err := promptNumber("Row", 1, size)
		if err != nil {
			return nil, err
		}
		col, err := promptNumber("Column", 1, size)
		if err != nil {
			return nil, err
		}
		status := b.Insert(row, col, val)
		fmt.Printf("%d at (%d,%d): %s\n", val, row, col, status)
		if status == domain.InsertOK {
			givens = append(givens, domain.Clue{Val: val, Row: row, Col: col})
		}
	}
	if solveSaveAs != "" {
		p := &domain.Puzzle{Name: solveSaveAs, Size: size, Givens: givens}
		if err := storage.NewFS(solveDataDir).Save(context.Background(), p); err != nil {
			return nil, fmt.Errorf("save puzzle: %w", err)
		}
		fmt.Printf("saved puzzle %s\n", p.ID)
	}
	return b, nil
}

func promptSize() (int, error) {
	var raw string
	in := huh.NewInput().
		Title("Board size").
		Description("Side length: a positive perfect square (4, 9, 16, ...)").
		Value(&raw).
		Validate(func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("not a whole number")
			}
			side := int(math.Sqrt(float64(n)))
			if n <= 0 || side*side != n {
				return fmt.Errorf("%d is not a positive perfect square", n)
			}
			return nil
		})
	if err := in.Run(); err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func promptNumber(title string, min, max int) (int, error) {
	var raw string
	in := huh.NewInput().
		Title(title).
		Value(&raw).
		Validate(func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < min || n > max {
				return fmt.Errorf("must be a whole number between %d and %d", min, max)
			}
			return nil
		})
	if err := in.Run(); err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}
