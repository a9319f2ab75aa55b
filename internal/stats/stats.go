// Package stats aggregates per-game tile counts into batch-wide statistics.
package stats

import (
	"sort"

	"github.com/vk/boardsim/internal/engine"
)

// Summary is the aggregate of one batch run.
type Summary struct {
	RunID    string              `json:"run_id"`
	Config   engine.GameConfig   `json:"config"`
	Games    []engine.GameResult `json:"games"`
	Totals   []int               `json:"totals"`     // visits per tile across all games
	Share    []float64           `json:"share"`      // Totals[i] / sum(Totals)
	Mean     []float64           `json:"mean"`       // Totals[i] / len(Games)
	Visits   int                 `json:"visits"`     // sum(Totals)
	Rolls    int                 `json:"rolls"`
	Jailings int                 `json:"jailings"`
	Escapes  int                 `json:"escapes"`
}

// TileStat is one row of a ranking.
type TileStat struct {
	Tile   int     `json:"tile"`
	Visits int     `json:"visits"`
	Share  float64 `json:"share"`
}

// Summarize folds results into a Summary. results must all come from games
// played with cfg.
func Summarize(runID string, cfg engine.GameConfig, results []engine.GameResult) Summary {
	s := Summary{
		RunID:  runID,
		Config: cfg,
		Games:  results,
		Totals: make([]int, cfg.Tiles),
		Share:  make([]float64, cfg.Tiles),
		Mean:   make([]float64, cfg.Tiles),
	}
	for _, res := range results {
		for tile, n := range res.Tiles {
			s.Totals[tile] += n
		}
		s.Visits += res.Tiles.Sum()
		s.Rolls += res.Rolls
		s.Jailings += res.Jailings
		s.Escapes += res.Escapes
	}
	for tile, n := range s.Totals {
		if s.Visits > 0 {
			s.Share[tile] = float64(n) / float64(s.Visits)
		}
		if len(results) > 0 {
			s.Mean[tile] = float64(n) / float64(len(results))
		}
	}
	return s
}

// Top returns the n most visited tiles, most visited first. Ties go to the
// lower tile index. n larger than the board returns every tile; n below one
// returns none.
func (s Summary) Top(n int) []TileStat {
	rows := make([]TileStat, len(s.Totals))
	for tile, visits := range s.Totals {
		rows[tile] = TileStat{Tile: tile, Visits: visits, Share: s.Share[tile]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Visits > rows[j].Visits
	})
	n = max(n, 0)
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
