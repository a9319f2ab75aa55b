// Package batch runs many independent games on a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/dice"
	"github.com/vk/boardsim/internal/engine"
)

// Options tunes a Runner.
type Options struct {
	// Workers is the number of games played concurrently. Values below one
	// mean one.
	Workers int
	// Seed is the first PCG seed word; the game index is the second, so a
	// game's dice do not depend on which worker plays it.
	Seed uint64
	// OnResult, if set, is called once per finished game. Calls never overlap.
	OnResult func(engine.GameResult)
}

// Runner plays Config().Games games of one Simulator.
type Runner struct {
	sim  *engine.Simulator
	opts Options
	done atomic.Int64
}

func New(sim *engine.Simulator, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{sim: sim, opts: opts}
}

// Total returns the number of games the runner will play.
func (r *Runner) Total() int {
	return r.sim.Config().Games
}

// Progress returns how many games have finished so far.
func (r *Runner) Progress() int {
	return int(r.done.Load())
}

// Run plays every game and returns the results ordered by game number. The
// first failing game cancels the remaining ones.
func (r *Runner) Run(ctx context.Context) ([]engine.GameResult, error) {
	logger := ctxlog.FromContext(ctx)
	total := r.Total()
	workers := min(r.opts.Workers, total)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readyChan := make(chan int)
	results := make([]engine.GameResult, total)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	logger.Debug("Batch starting.", "games", total, "workers", workers, "seed", r.opts.Seed)
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.worker(ctx, readyChan, workerID, func(res engine.GameResult, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					return
				}
				results[res.Game] = res
				r.done.Add(1)
				if r.opts.OnResult != nil {
					r.opts.OnResult(res)
				}
			})
		}(id)
	}

feed:
	for game := 0; game < total; game++ {
		select {
		case readyChan <- game:
		case <-ctx.Done():
			break feed
		}
	}
	close(readyChan)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled after %d of %d games: %w", r.Progress(), total, err)
	}
	logger.Debug("Batch finished.", "games", total)
	return results, nil
}

// worker plays games from readyChan until it is closed.
func (r *Runner) worker(ctx context.Context, readyChan <-chan int, workerID int, report func(engine.GameResult, error)) {
	ctx = ctxlog.With(ctx, "workerID", workerID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.")

	for game := range readyChan {
		if ctx.Err() != nil {
			continue
		}
		roller := dice.NewRandom(r.opts.Seed, uint64(game))
		res, err := r.sim.PlayGame(ctx, game, roller)
		if err != nil {
			logger.Error("Game failed.", "game", game, "error", err)
		}
		report(res, err)
	}
	logger.Debug("Worker finished.")
}
