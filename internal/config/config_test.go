package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/boardsim/internal/engine"
)

type stubLoader struct {
	cfg engine.GameConfig
	err error
}

func (s stubLoader) Load(_ context.Context, _ string, base engine.GameConfig) (engine.GameConfig, error) {
	if s.err != nil {
		return base, s.err
	}
	return s.cfg, nil
}

// emptyEnvFile keeps a stray ./.env from leaking into tests.
func emptyEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	return path
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(context.Background(), Sources{EnvFiles: []string{emptyEnvFile(t)}})
	require.NoError(t, err)
	require.Equal(t, engine.DefaultConfig(), cfg)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	fromFile := engine.DefaultConfig()
	fromFile.Games = 10
	fromFile.Players = 2
	t.Setenv("BOARDSIM_PLAYERS", "3")
	t.Setenv("BOARDSIM_JAIL_TILE", "0")

	cfg, err := Resolve(context.Background(), Sources{
		Path:     "sim.hcl",
		Loader:   stubLoader{cfg: fromFile},
		EnvFiles: []string{emptyEnvFile(t)},
	})
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Games)
	require.Equal(t, 3, cfg.Players)
	require.Equal(t, 0, cfg.JailTile)
	require.Equal(t, 40, cfg.Tiles)
}

func TestResolve_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.env")
	require.NoError(t, os.WriteFile(path, []byte("BOARDSIM_ROUNDS=7\n"), 0600))
	t.Setenv("BOARDSIM_ROUNDS", "")
	os.Unsetenv("BOARDSIM_ROUNDS")

	cfg, err := Resolve(context.Background(), Sources{EnvFiles: []string{path}})
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Rounds)
}

func TestResolve_MissingEnvFile(t *testing.T) {
	_, err := Resolve(context.Background(), Sources{EnvFiles: []string{filepath.Join(t.TempDir(), "nope.env")}})
	require.ErrorContains(t, err, "failed to load env files")
}

func TestResolve_BadEnvValue(t *testing.T) {
	t.Setenv("BOARDSIM_DICE", "two")

	_, err := Resolve(context.Background(), Sources{EnvFiles: []string{emptyEnvFile(t)}})
	require.ErrorContains(t, err, "parse env")
}

func TestResolve_Invalid(t *testing.T) {
	t.Setenv("BOARDSIM_TILES", "5")

	_, err := Resolve(context.Background(), Sources{EnvFiles: []string{emptyEnvFile(t)}})
	require.ErrorIs(t, err, engine.ErrInvalidConfig)
	require.ErrorContains(t, err, "jail_tile must be in [0, 5)")
}

func TestResolve_LoaderError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Resolve(context.Background(), Sources{Path: "x.hcl", Loader: stubLoader{err: boom}})
	require.ErrorIs(t, err, boom)
}

func TestResolve_PathWithoutLoader(t *testing.T) {
	_, err := Resolve(context.Background(), Sources{Path: "x.hcl"})
	require.ErrorContains(t, err, "a loader is required")
}
