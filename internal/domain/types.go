package domain

// CellCoord identifies a cell on the board, 1-indexed.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Clue is one given placement, 1-indexed.
type Clue struct {
	Val int `json:"val"`
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes the next forced placement found for a puzzle.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Val     int       `json:"val"`
}

// Puzzle is a persisted clue set with metadata. Size is the board side
// length, a positive perfect square.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	Givens    []Clue `json:"givens"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
