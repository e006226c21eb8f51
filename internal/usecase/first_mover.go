package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
)

const (
	FirstMovePlayer   = "player"
	FirstMoveComputer = "computer"
	FirstMoveRandom   = "random"
)

// ResolveFirstMover turns a first move choice into the mark that opens the series.
func ResolveFirstMover(choice string, player, computer entity.Mark, rnd service.Rand) (entity.Mark, error) {
	switch choice {
	case FirstMovePlayer:
		return player, nil
	case FirstMoveComputer:
		return computer, nil
	case FirstMoveRandom:
		if rnd.IntN(2) == 0 {
			return player, nil
		}
		return computer, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownFirstMover, choice)
	}
}
