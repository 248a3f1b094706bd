package solver

import "github.com/MarcoCalabretta/sudoku/internal/board"

type propResult int

const (
	propSolved propResult = iota
	propStalled
	propContradiction
)

// propagate applies the local deduction rules round by round until the board
// is full, a round places nothing new (stall), or some empty cell runs out
// of candidates. Every placement goes through Insert, so each rule sees the
// effects of the ones that fired before it within the same round; rule order
// only changes which insert fires first, never the fixpoint.
func propagate(b *board.Board) propResult {
	size := b.Size()
	for b.Filled() < size*size {
		before := b.Filled()
		if !round(b) {
			return propContradiction
		}
		if b.Filled() == before {
			return propStalled
		}
	}
	return propSolved
}

// round runs one pass of every rule over every value and unit index.
// It returns false on contradiction: an empty cell with no candidates left.
func round(b *board.Board) bool {
	size := b.Size()
	for i := 1; i <= size; i++ {
		nearCompleteValue(b, i)
		nearCompleteRow(b, i)
		nearCompleteCol(b, i)
		nearCompleteBox(b, i)
		for col := 1; col <= size; col++ {
			if b.Value(i, col) != 0 {
				continue
			}
			switch b.NoteCount(i, col) {
			case 1:
				nakedSingle(b, i, col)
			case 0:
				return false
			}
		}
	}
	hiddenSingles(b)
	return true
}

// nearCompleteValue handles a value placed everywhere but one cell: with
// size-1 appearances exactly one row and one column still lack it, and
// their intersection is the only cell left for it.
func nearCompleteValue(b *board.Board, val int) {
	size := b.Size()
	if b.Appearances(val) != size-1 {
		return
	}
	row, col := 0, 0
	for i := 1; i <= size; i++ {
		if !b.RowHas(i, val) {
			row = i
		}
		if !b.ColHas(i, val) {
			col = i
		}
	}
	if row != 0 && col != 0 {
		// Insert is the safety net: if the intersection is filled or
		// conflicted the board is contradictory and a later rule reports it.
		b.Insert(row, col, val)
	}
}

// nearCompleteRow fills a row that is one value short.
func nearCompleteRow(b *board.Board, row int) {
	size := b.Size()
	if b.RowCount(row) != size-1 {
		return
	}
	val, col := 0, 0
	for i := 1; i <= size; i++ {
		if !b.RowHas(row, i) {
			val = i
		}
		if b.Value(row, i) == 0 {
			col = i
		}
	}
	if val != 0 && col != 0 {
		b.Insert(row, col, val)
	}
}

// nearCompleteCol fills a column that is one value short.
func nearCompleteCol(b *board.Board, col int) {
	size := b.Size()
	if b.ColCount(col) != size-1 {
		return
	}
	val, row := 0, 0
	for i := 1; i <= size; i++ {
		if !b.ColHas(col, i) {
			val = i
		}
		if b.Value(i, col) == 0 {
			row = i
		}
	}
	if val != 0 && row != 0 {
		b.Insert(row, col, val)
	}
}

// nearCompleteBox fills a box that is one value short.
func nearCompleteBox(b *board.Board, box int) {
	size := b.Size()
	if b.BoxCount(box) != size-1 {
		return
	}
	val := 0
	for i := 1; i <= size; i++ {
		if !b.BoxHas(box, i) {
			val = i
		}
	}
	if val == 0 {
		return
	}
	br, bc := b.BoxOrigin(box)
	for r := br; r < br+b.BoxSide(); r++ {
		for c := bc; c < bc+b.BoxSide(); c++ {
			if b.Value(r, c) == 0 {
				b.Insert(r, c, val)
				return
			}
		}
	}
}

// nakedSingle places the sole remaining candidate of (row, col).
func nakedSingle(b *board.Board, row, col int) {
	for val := 1; val <= b.Size(); val++ {
		if b.HasNote(row, col, val) {
			b.Insert(row, col, val)
			return
		}
	}
}

// hiddenSingles places every value that has exactly one candidate cell left
// within some row, column, or box where it is not yet placed.
func hiddenSingles(b *board.Board) {
	size := b.Size()
	side := b.BoxSide()
	for val := 1; val <= size; val++ {
		for i := 1; i <= size; i++ {
			if !b.RowHas(i, val) {
				n, col := 0, 0
				for j := 1; j <= size && n <= 1; j++ {
					if b.HasNote(i, j, val) {
						n++
						col = j
					}
				}
				if n == 1 {
					b.Insert(i, col, val)
				}
			}
			if !b.ColHas(i, val) {
				n, row := 0, 0
				for j := 1; j <= size && n <= 1; j++ {
					if b.HasNote(j, i, val) {
						n++
						row = j
					}
				}
				if n == 1 {
					b.Insert(row, i, val)
				}
			}
			if !b.BoxHas(i, val) {
				br, bc := b.BoxOrigin(i)
				n, row, col := 0, 0, 0
				for r := br; r < br+side && n <= 1; r++ {
					for c := bc; c < bc+side; c++ {
						if b.HasNote(r, c, val) {
							n++
							row, col = r, c
						}
					}
				}
				if n == 1 {
					b.Insert(row, col, val)
				}
			}
		}
	}
}
