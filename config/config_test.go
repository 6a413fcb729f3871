package config

import (
	"os"
	"path/filepath"
	"testing"

	"dicegrid/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(""))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := Parse([]byte(`
server:
  addr: ":9000"
game:
  rounds: 3
  seed: 99
log:
  level: debug
simulate:
  games: 5
  strategies: [firstfit]
`))
		require.NoError(t, err)
		require.Equal(t, ":9000", cfg.Server.Addr)
		require.Equal(t, 3, cfg.Game.Rounds)
		require.Equal(t, uint64(99), cfg.Game.Seed)
		require.Equal(t, 5, cfg.Simulate.Games)
		require.Equal(t, []string{"firstfit"}, cfg.Simulate.Strategies)
		require.Equal(t, "experiments", cfg.Simulate.OutputDir)

		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Parse([]byte("game:\n  rounds: -1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = Parse([]byte("log:\n  level: loud\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("game: ["))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicegrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  rounds: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Game.Rounds)
	require.Equal(t, meta.DEFAULT_ADDR, cfg.Server.Addr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DICEGRID_ADDR", ":7000")
	t.Setenv("DICEGRID_ROUNDS", "4")
	t.Setenv("DICEGRID_STRATEGIES", "random,firstfit")

	cfg, err := Parse([]byte("game:\n  rounds: 2\n  seed: 8\n"))
	require.NoError(t, err)
	require.NoError(t, ApplyEnv(cfg))

	require.Equal(t, ":7000", cfg.Server.Addr)
	require.Equal(t, 4, cfg.Game.Rounds)
	require.Equal(t, uint64(8), cfg.Game.Seed)
	require.Equal(t, []string{"random", "firstfit"}, cfg.Simulate.Strategies)
	require.Equal(t, "info", cfg.Log.Level)

	t.Setenv("DICEGRID_ROUNDS", "many")
	require.ErrorIs(t, ApplyEnv(cfg), ErrInvalidConfig)
}
