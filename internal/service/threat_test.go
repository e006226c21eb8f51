package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func boardOf(squares ...entity.Mark) *entity.Board {
	board := entity.NewBoard()
	copy(board.Squares[:], squares)

	return board
}

func TestThreatenedCells(t *testing.T) {
	t.Run("Returns nothing for an empty board", func(t *testing.T) {
		assert.Empty(t, ThreatenedCells(entity.NewBoard(), x))
	})

	t.Run("Finds the third cell of a row", func(t *testing.T) {
		// Given: X holds cells 1 and 2
		board := boardOf(
			x, x, e,
			e, o, e,
			e, e, e,
		)

		// Then: cell 3 completes the row for X and nothing is threatened for O
		assert.Equal(t, []int{3}, ThreatenedCells(board, x))
		assert.Empty(t, ThreatenedCells(board, o))
	})

	t.Run("Returns cells in line scan order", func(t *testing.T) {
		// Given: X holds 1, 2 and 5
		board := boardOf(
			x, x, e,
			e, x, e,
			o, o, e,
		)

		// Then: row 1 comes before the main diagonal, column 2 is blocked by O
		assert.Equal(t, []int{3, 9}, ThreatenedCells(board, x))
	})

	t.Run("Ignores lines blocked by the opponent", func(t *testing.T) {
		board := boardOf(
			x, x, o,
			e, e, e,
			e, e, e,
		)

		assert.Empty(t, ThreatenedCells(board, x))
	})

	t.Run("Reports a shared cell once", func(t *testing.T) {
		// Given: X holds all four corners
		board := boardOf(
			x, e, x,
			e, e, e,
			x, e, x,
		)

		// Then: every edge and the center are threatened, the center only once
		assert.Equal(t, []int{2, 8, 4, 6, 5}, ThreatenedCells(board, x))
	})
}
