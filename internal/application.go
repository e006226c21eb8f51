package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("bad config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			// a prompt may still be blocked on input, so the next signal must kill us
			signal.Stop(sigs)
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rnd := newRand(conf.Game.Seed)

	strategy, err := service.ParseStrategy(conf.Game.Opponent)
	if err != nil {
		return fmt.Errorf("could not pick opponent: %w", err)
	}

	playerMark := entity.Mark(conf.Game.PlayerMark)
	computerMark := entity.Mark(conf.Game.ComputerMark)

	bot, err := service.NewBot(strategy, computerMark, playerMark, rnd)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	player := usecase.Participant{Name: conf.Game.PlayerName, Mark: playerMark, Human: true}
	computer := usecase.Participant{Name: conf.Game.ComputerName(), Mark: computerMark, Mover: bot}

	term := console.New(in, out, map[entity.Mark]string{
		player.Mark:   player.Name,
		computer.Mark: computer.Name,
	})
	player.Mover = term

	firstMover, err := usecase.ResolveFirstMover(conf.Game.FirstMove, playerMark, computerMark, rnd)
	if err != nil {
		return fmt.Errorf("could not pick first mover: %w", err)
	}

	controller, err := usecase.NewRoundController(logger, term, player, computer, firstMover, conf.Game.PointsToWin)
	if err != nil {
		return fmt.Errorf("could not create round controller: %w", err)
	}

	log.Info("Starting series", "opponent", strategy, "first_mover", firstMover, "points_to_win", conf.Game.PointsToWin)

	for {
		winner, err := controller.Play(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, console.ErrInputClosed) {
				log.Info("Series stopped", "reason", err)
				return nil
			}

			return fmt.Errorf("series failed: %w", err)
		}

		term.ShowGrandWinner(winner)

		again, err := term.Confirm("Would you like to play again?")
		if err != nil || !again {
			log.Info("Goodbye")
			return nil
		}

		firstMover, err = usecase.ResolveFirstMover(conf.Game.FirstMove, playerMark, computerMark, rnd)
		if err != nil {
			return fmt.Errorf("could not pick first mover: %w", err)
		}

		if err = controller.Reset(firstMover, conf.Game.PointsToWin); err != nil {
			return fmt.Errorf("could not reset series: %w", err)
		}
	}
}

// newRand returns a PCG source; seed 0 means a time-derived seed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	return rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint: gosec // game moves, not secrets
}
