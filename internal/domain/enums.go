package domain

// InsertStatus is the outcome of a single placement attempt on a board.
type InsertStatus int

const (
	InsertOK InsertStatus = iota
	InsertAlreadyFilled
	InsertConflict
)

func (s InsertStatus) String() string {
	switch s {
	case InsertOK:
		return "ok"
	case InsertAlreadyFilled:
		return "already filled"
	case InsertConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// SolveStatus is the outcome of a solve run.
type SolveStatus int

const (
	Solved SolveStatus = iota
	Unsolvable
)

func (s SolveStatus) String() string {
	switch s {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}
