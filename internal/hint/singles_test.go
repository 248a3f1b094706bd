package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcoCalabretta/sudoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	p := &domain.Puzzle{Size: 4, Givens: []domain.Clue{
		{Val: 1, Row: 1, Col: 1},
		{Val: 2, Row: 1, Col: 2},
		{Val: 3, Row: 1, Col: 3},
	}}
	h, found, err := NewSingles().Hint(context.Background(), p)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.CellCoord{Row: 1, Col: 4}, h.Cell)
	assert.Equal(t, 4, h.Val)
	assert.NotEmpty(t, h.Message)
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	p := &domain.Puzzle{Size: 9}
	_, found, err := NewSingles().Hint(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintBadPuzzle(t *testing.T) {
	p := &domain.Puzzle{Size: 3}
	_, _, err := NewSingles().Hint(context.Background(), p)
	assert.Error(t, err)
}
