package usecase

import (
	"errors"
	"maps"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrInvalidPoints = errors.New("invalid points to win")

// Scoreboard counts wins per mark and ties across rounds.
type Scoreboard struct {
	Wins        map[entity.Mark]int `json:"wins"`
	Ties        int                 `json:"ties"`
	PointsToWin int                 `json:"points_to_win"`
}

func NewScoreboard(pointsToWin int) Scoreboard {
	return Scoreboard{
		Wins:        make(map[entity.Mark]int),
		PointsToWin: pointsToWin,
	}
}

// Record adds a finished match to the tally. Ongoing outcomes are ignored.
func (that *Scoreboard) Record(outcome entity.Outcome) {
	switch outcome.Status {
	case entity.StatusWon:
		that.Wins[outcome.Winner]++
	case entity.StatusDrawn:
		that.Ties++
	case entity.StatusOngoing:
	}
}

// Leader returns the mark whose wins reached PointsToWin.
func (that *Scoreboard) Leader() (entity.Mark, bool) {
	for mark, wins := range that.Wins {
		if wins >= that.PointsToWin {
			return mark, true
		}
	}

	return entity.EmptyCell, false
}

func (that *Scoreboard) clone() Scoreboard {
	return Scoreboard{
		Wins:        maps.Clone(that.Wins),
		Ties:        that.Ties,
		PointsToWin: that.PointsToWin,
	}
}
