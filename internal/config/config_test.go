package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func validConfig() *Config {
	return &Config{
		LogLevel: "info",
		Game: Game{
			Opponent:     "optimal",
			PlayerName:   "Ada",
			PlayerMark:   "X",
			ComputerMark: "O",
			FirstMove:    "random",
			PointsToWin:  3,
		},
	}
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values and fills defaults", func(t *testing.T) {
		// Given: a config file that only sets the opponent and the name
		path := writeConfig(t, "game:\n  opponent: avoidant\n  player-name: Ada\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: file values are used and everything else falls back to defaults
		assert.Equal(t, "avoidant", conf.Game.Opponent)
		assert.Equal(t, "Ada", conf.Game.PlayerName)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "X", conf.Game.PlayerMark)
		assert.Equal(t, "O", conf.Game.ComputerMark)
		assert.Equal(t, "player", conf.Game.FirstMove)
		assert.Equal(t, 3, conf.Game.PointsToWin)
		require.NoError(t, conf.Validate())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("TTT_POINTS_TO_WIN", "5")
		path := writeConfig(t, "game:\n  points-to-win: 2\n")

		conf := MustLoad(path)

		assert.Equal(t, 5, conf.Game.PointsToWin)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(conf *Config)
	}{
		{name: "unknown log level", mutate: func(conf *Config) { conf.LogLevel = "trace" }},
		{name: "unknown opponent", mutate: func(conf *Config) { conf.Game.Opponent = "minimax" }},
		{name: "unknown first move", mutate: func(conf *Config) { conf.Game.FirstMove = "coin" }},
		{name: "long mark", mutate: func(conf *Config) { conf.Game.PlayerMark = "XX" }},
		{name: "empty mark", mutate: func(conf *Config) { conf.Game.ComputerMark = "" }},
		{name: "shared mark", mutate: func(conf *Config) { conf.Game.ComputerMark = "X" }},
		{name: "empty name", mutate: func(conf *Config) { conf.Game.PlayerName = "" }},
		{name: "zero points", mutate: func(conf *Config) { conf.Game.PointsToWin = 0 }},
	}

	require.NoError(t, validConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := validConfig()
			tt.mutate(conf)

			require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)
		})
	}
}

func TestGame_ComputerName(t *testing.T) {
	assert.Equal(t, "R2D2", (&Game{Opponent: "random"}).ComputerName())
	assert.Equal(t, "DJ Roomba", (&Game{Opponent: "avoidant"}).ComputerName())
	assert.Equal(t, "Hal", (&Game{Opponent: "optimal"}).ComputerName())
}
