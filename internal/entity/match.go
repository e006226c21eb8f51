package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDrawn   Status = "drawn"
)

// Outcome is always derived from the board, never stored.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("won by %s", that.Winner)
	case StatusDrawn:
		return "drawn"
	default:
		return "ongoing"
	}
}

// DetermineOutcome evaluates board: a completed line wins, a full board is a draw.
func DetermineOutcome(board *Board) Outcome {
	if winner := board.Winner(); winner != EmptyCell {
		return Outcome{Status: StatusWon, Winner: winner}
	}

	if board.IsFull() {
		return Outcome{Status: StatusDrawn}
	}

	return Outcome{Status: StatusOngoing}
}

// Match drives a single game between two marks until it is won or drawn.
type Match struct {
	board *Board
	marks [2]Mark
	turn  Mark
}

// NewMatch takes ownership of board and clears it. first moves first.
func NewMatch(board *Board, first, second Mark) (*Match, error) {
	if first == EmptyCell || second == EmptyCell || first == second {
		return nil, fmt.Errorf("%w: %q and %q", apperror.ErrSameMarks, first, second)
	}

	if board == nil {
		board = NewBoard()
	}

	board.Reset()

	return &Match{
		board: board,
		marks: [2]Mark{first, second},
		turn:  first,
	}, nil
}

func (that *Match) Board() *Board {
	return that.board
}

func (that *Match) Marks() [2]Mark {
	return that.marks
}

// Turn returns the mark expected to move next, or EmptyCell once the match is over.
func (that *Match) Turn() Mark {
	if that.Outcome().IsTerminal() {
		return EmptyCell
	}

	return that.turn
}

// Opponent returns the other mark of the match.
func (that *Match) Opponent(mark Mark) Mark {
	if mark == that.marks[0] {
		return that.marks[1]
	}

	return that.marks[0]
}

func (that *Match) FreeCells() []int {
	return that.board.FreeCells()
}

func (that *Match) Outcome() Outcome {
	return DetermineOutcome(that.board)
}

// MakeTurn marks cell for the current mover and re-evaluates the board.
// On error neither the board nor the mover change.
func (that *Match) MakeTurn(cell int) (Outcome, error) {
	outcome := that.Outcome()
	if outcome.IsTerminal() {
		return outcome, fmt.Errorf("%w: %s", apperror.ErrMatchAlreadyOver, outcome)
	}

	if err := that.board.Mark(cell, that.turn); err != nil {
		return outcome, err
	}

	outcome = that.Outcome()
	if !outcome.IsTerminal() {
		that.turn = that.Opponent(that.turn)
	}

	return outcome, nil
}

// MakeTurnAs is MakeTurn guarded by a check that mark is the current mover.
func (that *Match) MakeTurnAs(mark Mark, cell int) (Outcome, error) {
	outcome := that.Outcome()
	if outcome.IsTerminal() {
		return outcome, fmt.Errorf("%w: %s", apperror.ErrMatchAlreadyOver, outcome)
	}

	if mark != that.turn {
		return outcome, fmt.Errorf("%w: %s moves next", apperror.ErrNotYourTurn, that.turn)
	}

	return that.MakeTurn(cell)
}

// Restart clears the board and hands the first move to first.
func (that *Match) Restart(first Mark) error {
	if first != that.marks[0] && first != that.marks[1] {
		return fmt.Errorf("%w: %q does not play in this match", apperror.ErrNotYourTurn, first)
	}

	that.board.Reset()
	that.turn = first

	return nil
}
