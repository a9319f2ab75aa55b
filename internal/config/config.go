// Package config resolves the effective GameConfig for a run. Values are
// layered: built-in defaults, then the simulation file, then environment
// variables (optionally seeded from .env files).
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/engine"
)

// EnvPrefix prefixes every environment variable the simulator reads.
const EnvPrefix = "BOARDSIM_"

// Loader is the interface for a format-specific simulation file loader.
type Loader interface {
	// Load reads the file at path and applies it on top of base.
	Load(ctx context.Context, path string, base engine.GameConfig) (engine.GameConfig, error)
}

// Sources lists where configuration comes from.
type Sources struct {
	Path     string   // simulation file, optional
	EnvFiles []string // .env files; when empty, ./.env is read if present
	Loader   Loader   // required when Path is set
}

// overrides mirrors engine.GameConfig with pointers so unset variables can be
// told apart from zero.
type overrides struct {
	Games          *int `env:"GAMES"`
	Players        *int `env:"PLAYERS"`
	Tiles          *int `env:"TILES"`
	Rounds         *int `env:"ROUNDS"`
	Dice           *int `env:"DICE"`
	DiceSides      *int `env:"DICE_SIDES"`
	DoublesForJail *int `env:"DOUBLES_FOR_JAIL"`
	JailTile       *int `env:"JAIL_TILE"`
}

// Resolve builds and validates the config for a run.
func Resolve(ctx context.Context, src Sources) (engine.GameConfig, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := engine.DefaultConfig()

	if src.Path != "" {
		if src.Loader == nil {
			return cfg, errors.New("a loader is required to read a simulation file")
		}
		var err error
		cfg, err = src.Loader.Load(ctx, src.Path, cfg)
		if err != nil {
			return cfg, err
		}
		logger.Debug("Simulation file applied.", "path", src.Path)
	}

	if err := loadEnvFiles(src.EnvFiles); err != nil {
		return cfg, err
	}
	cfg, err := applyEnv(cfg)
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("Configuration resolved.", "config", cfg)
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

// applyEnv overlays every BOARDSIM_* variable that is set onto cfg.
func applyEnv(cfg engine.GameConfig) (engine.GameConfig, error) {
	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Games, o.Games)
	set(&cfg.Players, o.Players)
	set(&cfg.Tiles, o.Tiles)
	set(&cfg.Rounds, o.Rounds)
	set(&cfg.Dice, o.Dice)
	set(&cfg.DiceSides, o.DiceSides)
	set(&cfg.DoublesForJail, o.DoublesForJail)
	set(&cfg.JailTile, o.JailTile)
	return cfg, nil
}
