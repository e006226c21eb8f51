package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Mover picks the next cell for a participant. Bots and the console both satisfy it.
type Mover interface {
	Choose(board *entity.Board) (int, error)
}

type reporter interface {
	ShowBoard(board *entity.Board)
	ShowOutcome(outcome entity.Outcome, score Scoreboard)
}

type Participant struct {
	Name  string
	Mark  entity.Mark
	Human bool
	Mover Mover
}

// RoundController plays a series of matches between two participants and keeps score.
type RoundController struct {
	logger   *slog.Logger
	reporter reporter

	participants [2]Participant
	match        *entity.Match
	firstMover   entity.Mark
	score        Scoreboard
}

func NewRoundController(
	logger *slog.Logger,
	reporter reporter,
	player, computer Participant,
	firstMover entity.Mark,
	pointsToWin int,
) (*RoundController, error) {
	match, err := entity.NewMatch(entity.NewBoard(), player.Mark, computer.Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if firstMover != player.Mark && firstMover != computer.Mark {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownFirstMover, firstMover)
	}

	if pointsToWin < 1 {
		return nil, fmt.Errorf("%w: points to win must be positive, got %d", ErrInvalidPoints, pointsToWin)
	}

	return &RoundController{
		logger:   logger.With("component", "round"),
		reporter: reporter,

		participants: [2]Participant{player, computer},
		match:        match,
		firstMover:   firstMover,
		score:        NewScoreboard(pointsToWin),
	}, nil
}

// PlayRound plays one match to completion, records its result and hands the first
// move of the next round to the other participant.
func (that *RoundController) PlayRound(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "PlayRound", "match_id", uuid.NewString())

	if err := that.match.Restart(that.firstMover); err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to restart match: %w", err)
	}

	log.Info("match started", "first_mover", that.firstMover)

	board := that.match.Board()
	for {
		if err := ctx.Err(); err != nil {
			return that.match.Outcome(), fmt.Errorf("round interrupted: %w", err)
		}

		that.reporter.ShowBoard(board)

		mover := that.participant(that.match.Turn())
		cell, err := mover.Mover.Choose(board)
		if err != nil {
			return that.match.Outcome(), fmt.Errorf("%s failed to choose a cell: %w", mover.Name, err)
		}

		outcome, err := that.match.MakeTurnAs(mover.Mark, cell)
		if err != nil {
			if mover.Human && errors.Is(err, apperror.ErrInvalidMove) {
				log.Warn("invalid move, asking again", "player", mover.Name, "cell", cell, "error", err)
				continue
			}

			return outcome, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "player", mover.Name, "mark", mover.Mark, "cell", cell)

		if outcome.IsTerminal() {
			that.finishRound(log, outcome)

			return outcome, nil
		}
	}
}

// Play runs rounds until somebody reaches the points needed to win the series.
func (that *RoundController) Play(ctx context.Context) (Participant, error) {
	for {
		if winner, ok := that.GrandWinner(); ok {
			return winner, nil
		}

		if _, err := that.PlayRound(ctx); err != nil {
			return Participant{}, err
		}
	}
}

// GrandWinner returns the participant who has reached the points needed to win.
func (that *RoundController) GrandWinner() (Participant, bool) {
	mark, ok := that.score.Leader()
	if !ok {
		return Participant{}, false
	}

	return that.participant(mark), true
}

// Reset starts a new series with a clean scoreboard.
func (that *RoundController) Reset(firstMover entity.Mark, pointsToWin int) error {
	if firstMover != that.participants[0].Mark && firstMover != that.participants[1].Mark {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFirstMover, firstMover)
	}

	if pointsToWin < 1 {
		return fmt.Errorf("%w: points to win must be positive, got %d", ErrInvalidPoints, pointsToWin)
	}

	that.firstMover = firstMover
	that.score = NewScoreboard(pointsToWin)
	that.match.Board().Reset()

	return nil
}

func (that *RoundController) Score() Scoreboard {
	return that.score.clone()
}

func (that *RoundController) FirstMover() entity.Mark {
	return that.firstMover
}

func (that *RoundController) Participants() [2]Participant {
	return that.participants
}

func (that *RoundController) finishRound(log *slog.Logger, outcome entity.Outcome) {
	that.score.Record(outcome)
	that.firstMover = that.match.Opponent(that.firstMover)

	that.reporter.ShowBoard(that.match.Board())
	that.reporter.ShowOutcome(outcome, that.score.clone())

	log.Info("match finished", "outcome", outcome.String(), "next_first_mover", that.firstMover)
}

func (that *RoundController) participant(mark entity.Mark) Participant {
	if that.participants[0].Mark == mark {
		return that.participants[0]
	}

	return that.participants[1]
}
