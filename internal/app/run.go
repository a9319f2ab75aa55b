package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/vk/boardsim/internal/batch"
	"github.com/vk/boardsim/internal/config"
	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/engine"
	"github.com/vk/boardsim/internal/report"
	"github.com/vk/boardsim/internal/stats"
)

// topTiles is how many tiles the log summary ranks.
const topTiles = 5

// Run resolves the game config, plays the batch and hands the summary to
// every configured reporter.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	gameCfg, err := config.Resolve(ctx, config.Sources{
		Path:     a.config.ConfigPath,
		EnvFiles: a.config.EnvFiles,
		Loader:   a.loader,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}
	sim, err := engine.New(gameCfg)
	if err != nil {
		return err
	}

	reporters := report.Multi{report.LogReporter{Top: topTiles}}
	if a.config.Output != OutputNone {
		reporters = append(reporters, report.WriterReporter{W: a.outW, Format: a.config.Output})
	}
	if a.config.PublishURL != "" {
		pub, err := report.DialPublisher(ctx, report.PublisherConfig{
			URL:       a.config.PublishURL,
			Namespace: a.config.PublishNamespace,
		})
		if err != nil {
			return fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer pub.Close()
		reporters = append(reporters, pub)
	}

	seed := a.config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	runner := batch.New(sim, batch.Options{
		Workers: a.config.WorkerCount,
		Seed:    seed,
		OnResult: func(res engine.GameResult) {
			a.logger.Debug("Game finished.", "game", res.Game, "rolls", res.Rolls)
		},
	})
	a.runner.Store(runner)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	a.logger.Info("🎲 Starting simulation...", "games", gameCfg.Games, "workers", a.config.WorkerCount, "seed", seed)
	results, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	a.logger.Info("🏁 Simulation finished.", "games", len(results))

	summary := stats.Summarize(a.runID, gameCfg, results)
	if err := reporters.Report(ctx, summary); err != nil {
		return fmt.Errorf("failed to report results: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
