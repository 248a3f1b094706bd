package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// snapshot captures every externally observable piece of board state.
type snapshot struct {
	grid        [][]int
	filled      int
	appearances []int
	notes       [][]int
}

func snap(b *Board) snapshot {
	size := b.Size()
	s := snapshot{grid: b.Grid(), filled: b.Filled()}
	for v := 1; v <= size; v++ {
		s.appearances = append(s.appearances, b.Appearances(v))
	}
	s.notes = make([][]int, size)
	for r := 1; r <= size; r++ {
		s.notes[r-1] = make([]int, size)
		for c := 1; c <= size; c++ {
			s.notes[r-1][c-1] = b.NoteCount(r, c)
		}
	}
	return s
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 2, 3, 5, 8, 10} {
		assert.Panics(t, func() { New(size) }, "size %d", size)
	}
	for _, size := range []int{1, 4, 9, 16} {
		assert.NotPanics(t, func() { New(size) }, "size %d", size)
	}
}

func TestBoxIndexing(t *testing.T) {
	b := New(9)
	assert.Equal(t, 1, b.BoxIndex(1, 1))
	assert.Equal(t, 3, b.BoxIndex(2, 8))
	assert.Equal(t, 5, b.BoxIndex(5, 5))
	assert.Equal(t, 9, b.BoxIndex(9, 9))

	r, c := b.BoxOrigin(5)
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
	r, c = b.BoxOrigin(3)
	assert.Equal(t, 1, r)
	assert.Equal(t, 7, c)
}

func TestInsertMaintainsInvariants(t *testing.T) {
	b := New(9)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 5))
	require.Equal(t, domain.InsertOK, b.Insert(4, 7, 5))
	require.Equal(t, domain.InsertOK, b.Insert(2, 3, 8))

	assert.Equal(t, 5, b.Value(1, 1))
	assert.Equal(t, 3, b.Filled())
	assert.Equal(t, 2, b.Appearances(5))
	assert.Equal(t, 1, b.Appearances(8))

	assert.True(t, b.RowHas(1, 5))
	assert.True(t, b.ColHas(1, 5))
	assert.True(t, b.BoxHas(1, 5))
	assert.True(t, b.BoxHas(6, 5))
	assert.False(t, b.RowHas(2, 5))

	// total filled equals the sum of appearances
	sum := 0
	for v := 1; v <= 9; v++ {
		sum += b.Appearances(v)
	}
	assert.Equal(t, b.Filled(), sum)
}

func TestInsertStatuses(t *testing.T) {
	b := New(9)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 5))

	// same cell again: no mutation either way
	assert.Equal(t, domain.InsertAlreadyFilled, b.Insert(1, 1, 5))
	assert.Equal(t, domain.InsertAlreadyFilled, b.Insert(1, 1, 6))

	assert.Equal(t, domain.InsertConflict, b.Insert(1, 9, 5), "row conflict")
	assert.Equal(t, domain.InsertConflict, b.Insert(9, 1, 5), "column conflict")
	assert.Equal(t, domain.InsertConflict, b.Insert(3, 3, 5), "box conflict")

	assert.Equal(t, 1, b.Filled())
	assert.Equal(t, 1, b.Appearances(5))
}

func TestRejectedInsertLeavesBoardUnchanged(t *testing.T) {
	b := New(9)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 5))
	b.InitNotes()
	before := snap(b)

	assert.Equal(t, domain.InsertConflict, b.Insert(1, 5, 5))
	assert.Equal(t, domain.InsertAlreadyFilled, b.Insert(1, 1, 2))
	assert.Equal(t, before, snap(b))
}

func TestInsertContractViolationsPanic(t *testing.T) {
	b := New(4)
	assert.Panics(t, func() { b.Insert(0, 1, 1) })
	assert.Panics(t, func() { b.Insert(1, 5, 1) })
	assert.Panics(t, func() { b.Insert(1, 1, 0) })
	assert.Panics(t, func() { b.Insert(1, 1, 5) })
	assert.Panics(t, func() { b.Value(5, 1) })
}

func TestNotesRetraction(t *testing.T) {
	b := New(4)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 1))
	b.InitNotes()

	// (1,1) is filled: no notes
	assert.Equal(t, 0, b.NoteCount(1, 1))
	// peers of (1,1) cannot note 1
	assert.False(t, b.HasNote(1, 4, 1))
	assert.False(t, b.HasNote(4, 1, 1))
	assert.False(t, b.HasNote(2, 2, 1))
	// a cell sharing nothing with (1,1) still can
	assert.True(t, b.HasNote(3, 3, 1))

	// inserting retracts across row, column, and box, and clears the cell
	require.Equal(t, domain.InsertOK, b.Insert(3, 3, 2))
	assert.Equal(t, 0, b.NoteCount(3, 3))
	assert.False(t, b.HasNote(3, 1, 2))
	assert.False(t, b.HasNote(1, 3, 2))
	assert.False(t, b.HasNote(4, 4, 2))
	assert.True(t, b.HasNote(2, 2, 2))
}

func TestInitNotesMatchesUnits(t *testing.T) {
	b := New(4)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 1))
	require.Equal(t, domain.InsertOK, b.Insert(1, 2, 2))
	require.Equal(t, domain.InsertOK, b.Insert(2, 3, 1))
	b.InitNotes()

	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			if b.Value(r, c) != 0 {
				assert.Equal(t, 0, b.NoteCount(r, c))
				continue
			}
			box := b.BoxIndex(r, c)
			for v := 1; v <= 4; v++ {
				want := !b.RowHas(r, v) && !b.ColHas(c, v) && !b.BoxHas(box, v)
				assert.Equal(t, want, b.HasNote(r, c, v), "cell (%d,%d) value %d", r, c, v)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(9)
	require.Equal(t, domain.InsertOK, b.Insert(1, 1, 5))
	b.InitNotes()

	clone := b.Clone()
	require.Equal(t, snap(b), snap(clone))

	// mutations cross neither direction
	require.Equal(t, domain.InsertOK, clone.Insert(5, 5, 7))
	assert.Equal(t, 0, b.Value(5, 5))
	assert.Equal(t, 0, b.Appearances(7))
	assert.True(t, b.HasNote(5, 9, 7))

	require.Equal(t, domain.InsertOK, b.Insert(9, 9, 3))
	assert.Equal(t, 0, clone.Value(9, 9))

	clone.RemoveNote(2, 2, 4)
	assert.True(t, b.HasNote(2, 2, 4))
}

func TestFromPuzzle(t *testing.T) {
	p := &domain.Puzzle{Size: 4, Givens: []domain.Clue{
		{Val: 1, Row: 1, Col: 1},
		{Val: 2, Row: 2, Col: 3},
	}}
	b, err := FromPuzzle(p)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Value(1, 1))
	assert.Equal(t, 2, b.Value(2, 3))

	cases := []struct {
		name string
		p    domain.Puzzle
	}{
		{"bad size", domain.Puzzle{Size: 5}},
		{"zero size", domain.Puzzle{Size: 0}},
		{"out of range given", domain.Puzzle{Size: 4, Givens: []domain.Clue{{Val: 5, Row: 1, Col: 1}}}},
		{"cell given twice", domain.Puzzle{Size: 4, Givens: []domain.Clue{{Val: 1, Row: 1, Col: 1}, {Val: 2, Row: 1, Col: 1}}}},
		{"conflicting given", domain.Puzzle{Size: 4, Givens: []domain.Clue{{Val: 1, Row: 1, Col: 1}, {Val: 1, Row: 1, Col: 4}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromPuzzle(&tc.p)
			assert.Error(t, err)
		})
	}
}
