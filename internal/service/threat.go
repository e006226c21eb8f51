package service

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// ThreatenedCells returns the free cells that would complete a winning line for mark,
// in line scan order and without duplicates. Called with the opponent's mark it
// yields the cells that have to be blocked.
func ThreatenedCells(board *entity.Board, mark entity.Mark) []int {
	var cells []int

	for _, line := range entity.WinningLines {
		cell, ok := thirdInARow(board, line, mark)
		if ok && !slices.Contains(cells, cell) {
			cells = append(cells, cell)
		}
	}

	return cells
}

// thirdInARow finds the free cell of line when the other two hold mark.
func thirdInARow(board *entity.Board, line [3]int, mark entity.Mark) (int, bool) {
	owned, free := 0, 0
	for _, cell := range line {
		switch board.At(cell) {
		case mark:
			owned++
		case entity.EmptyCell:
			free = cell
		}
	}

	if owned != 2 || free == 0 {
		return 0, false
	}

	return free, true
}
