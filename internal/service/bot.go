package service

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Strategy string

const (
	// StrategyRandom picks any free cell.
	StrategyRandom Strategy = "random"
	// StrategyAvoidant never completes its own line unless it has no other choice.
	StrategyAvoidant Strategy = "avoidant"
	// StrategyOptimal wins, then blocks, then prefers the center and the corners.
	StrategyOptimal Strategy = "optimal"
)

// Rand is satisfied by *rand.Rand from math/rand/v2.
type Rand interface {
	IntN(n int) int
}

func ParseStrategy(name string) (Strategy, error) {
	switch strategy := Strategy(name); strategy {
	case StrategyRandom, StrategyAvoidant, StrategyOptimal:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, name)
	}
}

// Bot is a computer opponent. It keeps no state between moves.
type Bot struct {
	strategy Strategy
	mark     entity.Mark
	opponent entity.Mark
	rnd      Rand
}

func NewBot(strategy Strategy, mark, opponent entity.Mark, rnd Rand) (*Bot, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}

	if mark == entity.EmptyCell || opponent == entity.EmptyCell || mark == opponent {
		return nil, fmt.Errorf("%w: %q and %q", apperror.ErrSameMarks, mark, opponent)
	}

	return &Bot{
		strategy: strategy,
		mark:     mark,
		opponent: opponent,
		rnd:      rnd,
	}, nil
}

func (that *Bot) Strategy() Strategy {
	return that.strategy
}

func (that *Bot) Mark() entity.Mark {
	return that.mark
}

// Choose returns the cell the bot wants to mark on board.
func (that *Bot) Choose(board *entity.Board) (int, error) {
	free := board.FreeCells()
	if len(free) == 0 {
		return 0, apperror.ErrNoMovesAvailable
	}

	switch that.strategy {
	case StrategyRandom:
		return that.pick(free), nil
	case StrategyAvoidant:
		return that.chooseAvoidant(board, free), nil
	case StrategyOptimal:
		return that.chooseOptimal(board, free), nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, that.strategy)
	}
}

// MakeTurn chooses a cell and plays it on match.
func (that *Bot) MakeTurn(match *entity.Match) (entity.Outcome, error) {
	cell, err := that.Choose(match.Board())
	if err != nil {
		return match.Outcome(), fmt.Errorf("bot failed to choose a cell: %w", err)
	}

	outcome, err := match.MakeTurnAs(that.mark, cell)
	if err != nil {
		return outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return outcome, nil
}

func (that *Bot) chooseAvoidant(board *entity.Board, free []int) int {
	avoid := ThreatenedCells(board, that.mark)
	if len(avoid) == 0 {
		return that.pick(free)
	}

	safe := slices.DeleteFunc(slices.Clone(free), func(cell int) bool {
		return slices.Contains(avoid, cell)
	})
	if len(safe) == 0 {
		return that.pick(free)
	}

	return that.pick(safe)
}

func (that *Bot) chooseOptimal(board *entity.Board, free []int) int {
	if wins := ThreatenedCells(board, that.mark); len(wins) > 0 {
		return wins[0]
	}

	if blocks := ThreatenedCells(board, that.opponent); len(blocks) > 0 {
		return blocks[0]
	}

	if board.IsFree(entity.CenterCell) {
		return entity.CenterCell
	}

	if corners := board.FreeCorners(); len(corners) > 0 {
		return corners[0]
	}

	return that.pick(free)
}

func (that *Bot) pick(cells []int) int {
	return cells[that.rnd.IntN(len(cells))]
}
