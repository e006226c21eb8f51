package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Opponent     string `yaml:"opponent" env:"TTT_OPPONENT" env-default:"optimal"`
	PlayerName   string `yaml:"player-name" env:"TTT_PLAYER_NAME" env-default:"Player"`
	PlayerMark   string `yaml:"player-mark" env:"TTT_PLAYER_MARK" env-default:"X"`
	ComputerMark string `yaml:"computer-mark" env:"TTT_COMPUTER_MARK" env-default:"O"`
	FirstMove    string `yaml:"first-move" env:"TTT_FIRST_MOVE" env-default:"player"`
	PointsToWin  int    `yaml:"points-to-win" env:"TTT_POINTS_TO_WIN" env-default:"3"`
	Seed         uint64 `yaml:"seed" env:"TTT_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Validate checks the values the game cannot start without.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	return that.Game.Validate()
}

func (that *Game) Validate() error {
	switch that.Opponent {
	case "random", "avoidant", "optimal":
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidConfig, that.Opponent)
	}

	switch that.FirstMove {
	case "player", "computer", "random":
	default:
		return fmt.Errorf("%w: unknown first move %q", ErrInvalidConfig, that.FirstMove)
	}

	if utf8.RuneCountInString(that.PlayerMark) != 1 || utf8.RuneCountInString(that.ComputerMark) != 1 {
		return fmt.Errorf("%w: marks must be a single character", ErrInvalidConfig)
	}

	if that.PlayerMark == that.ComputerMark {
		return fmt.Errorf("%w: player and computer share mark %q", ErrInvalidConfig, that.PlayerMark)
	}

	if that.PlayerName == "" {
		return fmt.Errorf("%w: player name is empty", ErrInvalidConfig)
	}

	if that.PointsToWin < 1 {
		return fmt.Errorf("%w: points to win must be positive, got %d", ErrInvalidConfig, that.PointsToWin)
	}

	return nil
}

// ComputerName returns the display name of the configured opponent.
func (that *Game) ComputerName() string {
	switch that.Opponent {
	case "random":
		return "R2D2"
	case "avoidant":
		return "DJ Roomba"
	default:
		return "Hal"
	}
}
