package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Mark is the symbol a player puts on the board.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	FirstCell  = 1
	LastCell   = 9
	CenterCell = 5
)

var (
	// WinningLines are scanned in this order: rows, then columns, then diagonals.
	WinningLines = [8][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}

	Corners = [4]int{1, 3, 7, 9}
)

// Board is a 3x3 grid addressed by cells 1..9 in row-major order.
type Board struct {
	Squares [9]Mark `json:"squares"`
}

func NewBoard() *Board {
	return &Board{}
}

// IsValidCell reports whether cell addresses a square of the board.
func IsValidCell(cell int) bool {
	return cell >= FirstCell && cell <= LastCell
}

// At returns the mark on cell, or EmptyCell when the cell is free or out of range.
func (that *Board) At(cell int) Mark {
	if !IsValidCell(cell) {
		return EmptyCell
	}

	return that.Squares[cell-1]
}

func (that *Board) IsFree(cell int) bool {
	return IsValidCell(cell) && that.Squares[cell-1] == EmptyCell
}

// Mark puts mark on cell. The board is left untouched on error.
func (that *Board) Mark(cell int, mark Mark) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if mark == EmptyCell {
		return fmt.Errorf("%w: empty mark", apperror.ErrInvalidMove)
	}

	if that.Squares[cell-1] != EmptyCell {
		return fmt.Errorf("%w: cell %d is already marked", apperror.ErrInvalidMove, cell)
	}

	that.Squares[cell-1] = mark

	return nil
}

// FreeCells returns the unmarked cells in ascending order.
func (that *Board) FreeCells() []int {
	cells := make([]int, 0, len(that.Squares))
	for i, square := range that.Squares {
		if square == EmptyCell {
			cells = append(cells, i+1)
		}
	}

	return cells
}

// FreeCorners returns the unmarked corners in the order 1, 3, 7, 9.
func (that *Board) FreeCorners() []int {
	cells := make([]int, 0, len(Corners))
	for _, corner := range Corners {
		if that.IsFree(corner) {
			cells = append(cells, corner)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for _, square := range that.Squares {
		if square == EmptyCell {
			return false
		}
	}

	return true
}

// LineOwner returns the mark filling all three cells of line, or EmptyCell.
func (that *Board) LineOwner(line [3]int) Mark {
	a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
	if a != EmptyCell && a == b && b == c {
		return a
	}

	return EmptyCell
}

// Winner returns the owner of the first completed line in scan order, or EmptyCell.
func (that *Board) Winner() Mark {
	for _, line := range WinningLines {
		if owner := that.LineOwner(line); owner != EmptyCell {
			return owner
		}
	}

	return EmptyCell
}

func (that *Board) Reset() {
	for i := range that.Squares {
		that.Squares[i] = EmptyCell
	}
}
