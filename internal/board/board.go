package board

import (
	"fmt"
	"math"

	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

// Board is an N×N sudoku grid together with the derived constraint state the
// solver relies on: per-row/column/box used-value sets, per-empty-cell
// candidate notes, and per-value appearance counters. Every state change
// goes through Insert, which keeps all of it mutually consistent.
//
// The public API is 1-indexed throughout: rows, columns, boxes, and values
// run 1..Size(). Out-of-range arguments are contract violations and panic;
// domain outcomes (already filled, conflict) are ordinary return values.
type Board struct {
	size int
	side int // box side length, √size

	grid  [][]int
	rows  []*PresenceSet
	cols  []*PresenceSet
	boxes []*PresenceSet
	notes [][]*PresenceSet

	appearances []int
	filled      int
}

// New returns an empty board. size must be a positive perfect square.
func New(size int) *Board {
	side := int(math.Sqrt(float64(size)))
	if size <= 0 || side*side != size {
		panic(fmt.Sprintf("board: size %d is not a positive perfect square", size))
	}
	b := &Board{
		size:        size,
		side:        side,
		grid:        make([][]int, size),
		rows:        make([]*PresenceSet, size),
		cols:        make([]*PresenceSet, size),
		boxes:       make([]*PresenceSet, size),
		notes:       make([][]*PresenceSet, size),
		appearances: make([]int, size),
	}
	for i := 0; i < size; i++ {
		b.grid[i] = make([]int, size)
		b.rows[i] = NewPresenceSet(size)
		b.cols[i] = NewPresenceSet(size)
		b.boxes[i] = NewPresenceSet(size)
		b.notes[i] = make([]*PresenceSet, size)
		for j := 0; j < size; j++ {
			b.notes[i][j] = NewPresenceSet(size)
		}
	}
	return b
}

func (b *Board) mustIndex(name string, i int) {
	if i < 1 || i > b.size {
		panic(fmt.Sprintf("board: %s %d out of range 1..%d", name, i, b.size))
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// BoxSide returns the side length of one box, √Size.
func (b *Board) BoxSide() int { return b.side }

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int { return b.filled }

// Value returns the value at (row, col), 0 for an empty cell.
func (b *Board) Value(row, col int) int {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	return b.grid[row-1][col-1]
}

// Appearances returns how many cells currently hold val.
func (b *Board) Appearances(val int) int {
	b.mustIndex("value", val)
	return b.appearances[val-1]
}

// BoxIndex returns the box containing (row, col). Boxes are numbered
// left to right, then top to bottom.
func (b *Board) BoxIndex(row, col int) int {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	return b.side*((row-1)/b.side) + (col-1)/b.side + 1
}

// BoxOrigin returns the top-left cell of the given box.
func (b *Board) BoxOrigin(box int) (row, col int) {
	b.mustIndex("box", box)
	return b.side*((box-1)/b.side) + 1, b.side*((box-1)%b.side) + 1
}

// RowCount returns the number of distinct values placed in the row.
func (b *Board) RowCount(row int) int {
	b.mustIndex("row", row)
	return b.rows[row-1].Count()
}

// ColCount returns the number of distinct values placed in the column.
func (b *Board) ColCount(col int) int {
	b.mustIndex("col", col)
	return b.cols[col-1].Count()
}

// BoxCount returns the number of distinct values placed in the box.
func (b *Board) BoxCount(box int) int {
	b.mustIndex("box", box)
	return b.boxes[box-1].Count()
}

// RowHas reports whether val is placed somewhere in the row.
func (b *Board) RowHas(row, val int) bool {
	b.mustIndex("row", row)
	return b.rows[row-1].Check(val)
}

// ColHas reports whether val is placed somewhere in the column.
func (b *Board) ColHas(col, val int) bool {
	b.mustIndex("col", col)
	return b.cols[col-1].Check(val)
}

// BoxHas reports whether val is placed somewhere in the box.
func (b *Board) BoxHas(box, val int) bool {
	b.mustIndex("box", box)
	return b.boxes[box-1].Check(val)
}

// NoteCount returns the number of candidates noted for (row, col).
// Filled cells always report 0.
func (b *Board) NoteCount(row, col int) int {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	return b.notes[row-1][col-1].Count()
}

// HasNote reports whether val is a noted candidate for (row, col).
func (b *Board) HasNote(row, col, val int) bool {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	return b.notes[row-1][col-1].Check(val)
}

// RemoveNote retracts val from (row, col)'s candidates. Notes are only ever
// retracted after InitNotes has run; the search uses this to rule out a
// failed guess for good.
func (b *Board) RemoveNote(row, col, val int) {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	b.notes[row-1][col-1].Off(val)
}

// Insert places val at (row, col). It is the board's only mutator: on
// success it updates the grid, the three used-value sets, the appearance
// counters, and retracts val from the notes of every cell sharing a row,
// column, or box with (row, col), clearing the cell's own notes entirely.
//
// A filled target cell or a val already used in the cell's row, column, or
// box leaves the board untouched and reports the corresponding status.
func (b *Board) Insert(row, col, val int) domain.InsertStatus {
	b.mustIndex("row", row)
	b.mustIndex("col", col)
	b.mustIndex("value", val)
	if b.grid[row-1][col-1] != 0 {
		return domain.InsertAlreadyFilled
	}
	box := b.BoxIndex(row, col)
	if b.rows[row-1].Check(val) || b.cols[col-1].Check(val) || b.boxes[box-1].Check(val) {
		return domain.InsertConflict
	}

	b.grid[row-1][col-1] = val
	b.appearances[val-1]++
	b.rows[row-1].Flip(val)
	b.cols[col-1].Flip(val)
	b.boxes[box-1].Flip(val)

	// retract notes: the whole cell, then val across its row and column
	for i := 1; i <= b.size; i++ {
		b.notes[row-1][col-1].Off(i)
		b.notes[i-1][col-1].Off(val)
		b.notes[row-1][i-1].Off(val)
	}
	// and across its box
	br, bc := b.BoxOrigin(box)
	for r := br; r < br+b.side; r++ {
		for c := bc; c < bc+b.side; c++ {
			b.notes[r-1][c-1].Off(val)
		}
	}

	b.filled++
	return domain.InsertOK
}

// InitNotes derives every empty cell's candidate set from the current
// placements: val is noted iff it is absent from the cell's row, column,
// and box. It must run exactly once, after all givens are inserted and
// before solving. Afterwards notes are maintained by Insert's retraction
// alone; running it again could resurrect candidates the search has already
// ruled out.
func (b *Board) InitNotes() {
	for row := 1; row <= b.size; row++ {
		for col := 1; col <= b.size; col++ {
			if b.grid[row-1][col-1] != 0 {
				continue
			}
			box := b.BoxIndex(row, col)
			for val := 1; val <= b.size; val++ {
				if !b.rows[row-1].Check(val) && !b.cols[col-1].Check(val) && !b.boxes[box-1].Check(val) {
					b.notes[row-1][col-1].On(val)
				}
			}
		}
	}
}

// CopyFrom overwrites b's entire state with src's. Sizes must match; no
// PresenceSet storage is shared afterwards.
func (b *Board) CopyFrom(src *Board) {
	if b.size != src.size {
		panic(fmt.Sprintf("board: size mismatch %d != %d", b.size, src.size))
	}
	b.filled = src.filled
	copy(b.appearances, src.appearances)
	for i := 0; i < b.size; i++ {
		copy(b.grid[i], src.grid[i])
		b.rows[i].CopyFrom(src.rows[i])
		b.cols[i].CopyFrom(src.cols[i])
		b.boxes[i].CopyFrom(src.boxes[i])
		for j := 0; j < b.size; j++ {
			b.notes[i][j].CopyFrom(src.notes[i][j])
		}
	}
}

// Clone returns a fully independent deep copy of b.
func (b *Board) Clone() *Board {
	nb := New(b.size)
	nb.CopyFrom(b)
	return nb
}

// Grid returns a copy of the raw grid, 0 for empty cells.
func (b *Board) Grid() [][]int {
	out := make([][]int, b.size)
	for i := range out {
		out[i] = make([]int, b.size)
		copy(out[i], b.grid[i])
	}
	return out
}
