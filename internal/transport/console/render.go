package console

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RenderBoard draws the board; free squares show their number.
func RenderBoard(board *entity.Board) string {
	rows := make([]string, 0, 3)
	for row := range 3 {
		squares := make([]string, 0, 3)
		for col := range 3 {
			cell := row*3 + col + 1
			squares = append(squares, "  "+square(board, cell)+"  ")
		}

		rows = append(rows, strings.Join(squares, "|"))
	}

	return strings.Join(rows, "\n-----+-----+-----\n")
}

// RenderScore prints wins per name, sorted by name, followed by ties.
func RenderScore(score usecase.Scoreboard, names map[entity.Mark]string) string {
	marks := make([]entity.Mark, 0, len(names))
	for mark := range names {
		marks = append(marks, mark)
	}

	slices.SortFunc(marks, func(a, b entity.Mark) int {
		return strings.Compare(names[a], names[b])
	})

	parts := make([]string, 0, len(marks)+1)
	for _, mark := range marks {
		parts = append(parts, fmt.Sprintf("%s's wins: %d", names[mark], score.Wins[mark]))
	}

	parts = append(parts, fmt.Sprintf("Ties: %d", score.Ties))

	return fmt.Sprintf("First to %d wins | %s", score.PointsToWin, strings.Join(parts, " | "))
}

func square(board *entity.Board, cell int) string {
	if mark := board.At(cell); mark != entity.EmptyCell {
		return string(mark)
	}

	return strconv.Itoa(cell)
}

// joinOr lists cells as "1", "1 or 2" and "1, 2, or 3".
func joinOr(cells []int) string {
	words := make([]string, 0, len(cells))
	for _, cell := range cells {
		words = append(words, strconv.Itoa(cell))
	}

	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " or " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", or " + words[len(words)-1]
	}
}
