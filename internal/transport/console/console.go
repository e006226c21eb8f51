package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var ErrInputClosed = errors.New("input closed")

// Console reads a human's moves and prints the game to a terminal.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	names   map[entity.Mark]string
}

// New creates a console. names maps each mark to the name shown for it.
func New(in io.Reader, out io.Writer, names map[entity.Mark]string) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		names:   names,
	}
}

// Choose asks for a square until a free one is entered.
func (that *Console) Choose(board *entity.Board) (int, error) {
	free := board.FreeCells()
	if len(free) == 0 {
		return 0, apperror.ErrNoMovesAvailable
	}

	for {
		that.printf("Choose a square (%s): ", joinOr(free))

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		cell, err := strconv.Atoi(line)
		if err == nil && board.IsFree(cell) {
			return cell, nil
		}

		that.println("Sorry, that's not a valid choice.")
	}
}

// Confirm asks a yes/no question until it gets an answer.
func (that *Console) Confirm(question string) (bool, error) {
	for {
		that.printf("%s (y/n) ", question)

		line, err := that.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		that.println("Sorry, must be y or n.")
	}
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.println()
	that.println(RenderBoard(board))
}

func (that *Console) ShowOutcome(outcome entity.Outcome, score usecase.Scoreboard) {
	switch outcome.Status {
	case entity.StatusWon:
		that.printf("%s won!\n", that.name(outcome.Winner))
	case entity.StatusDrawn:
		that.println("The board is full!")
	case entity.StatusOngoing:
		return
	}

	that.println(RenderScore(score, that.names))
}

func (that *Console) ShowGrandWinner(winner usecase.Participant) {
	that.printf("\n* * * %s is the grand winner! * * *\n", winner.Name)
}

func (that *Console) readLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

func (that *Console) name(mark entity.Mark) string {
	if name, ok := that.names[mark]; ok {
		return name
	}

	return string(mark)
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) println(args ...any) {
	_, _ = fmt.Fprintln(that.out, args...)
}
