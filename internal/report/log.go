package report

import (
	"context"

	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/stats"
)

// LogReporter writes one record per game and a closing summary record to the
// context logger.
type LogReporter struct {
	// Top is how many of the most visited tiles the summary record lists.
	Top int
}

func (l LogReporter) Report(ctx context.Context, s stats.Summary) error {
	logger := ctxlog.FromContext(ctx)
	for _, g := range s.Games {
		logger.Info("Game result.", "game", g.Game, "tiles", []int(g.Tiles), "rolls", g.Rolls, "jailings", g.Jailings, "escapes", g.Escapes)
	}
	logger.Info("Batch summary.",
		"games", len(s.Games),
		"visits", s.Visits,
		"rolls", s.Rolls,
		"jailings", s.Jailings,
		"escapes", s.Escapes,
		"top", s.Top(l.Top),
	)
	return nil
}
