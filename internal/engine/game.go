package engine

import (
	"context"
	"fmt"

	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/dice"
)

// Simulator plays games for one validated GameConfig.
type Simulator struct {
	cfg GameConfig
}

// New validates cfg and returns a Simulator for it.
func New(cfg GameConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{cfg: cfg}, nil
}

// Config returns a copy of the simulator's configuration.
func (s *Simulator) Config() GameConfig {
	return s.cfg
}

// GameResult is the outcome of one game. Tiles is never modified after
// PlayGame returns it.
type GameResult struct {
	Game     int        `json:"game"`
	Tiles    TileCounts `json:"tiles"`
	Turns    int        `json:"turns"`
	Rolls    int        `json:"rolls"`
	Jailings int        `json:"jailings"`
	Escapes  int        `json:"escapes"`
}

// PlayGame runs a full game: every round, each player in number order takes a
// turn and the tile they finish on is credited once. Cancellation is checked
// between rounds.
func (s *Simulator) PlayGame(ctx context.Context, game int, roller dice.Roller) (GameResult, error) {
	ctx = ctxlog.With(ctx, "game", game)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting game.", "config", s.cfg)

	players := make([]*Player, s.cfg.Players)
	for i := range players {
		players[i] = NewPlayer(i)
	}

	result := GameResult{Game: game, Tiles: make(TileCounts, s.cfg.Tiles)}
	for round := 0; round < s.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return GameResult{}, fmt.Errorf("game %d stopped at round %d: %w", game, round, err)
		}
		logger.Debug("Starting round.", "round", round)
		for _, p := range players {
			turn := s.TakeTurn(ctx, p, roller)
			result.Tiles[p.Position]++
			result.Turns++
			result.Rolls += len(turn.Rolls)
			if turn.Escaped {
				result.Escapes++
			}
			if turn.Outcome == TurnJailed {
				result.Jailings++
			}
		}
	}

	logger.Debug("Game finished.", "turns", result.Turns, "rolls", result.Rolls)
	return result, nil
}
