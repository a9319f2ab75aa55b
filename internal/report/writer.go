package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/boardsim/internal/stats"
)

// Output formats understood by WriterReporter.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriterReporter renders the summary to w as a table or as JSON.
type WriterReporter struct {
	W      io.Writer
	Format string
}

func (r WriterReporter) Report(_ context.Context, s stats.Summary) error {
	switch r.Format {
	case FormatJSON:
		enc := json.NewEncoder(r.W)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	case FormatText, "":
		return r.writeText(s)
	default:
		return fmt.Errorf("unknown report format %q", r.Format)
	}
}

func (r WriterReporter) writeText(s stats.Summary) error {
	cfg := s.Config
	fmt.Fprintf(r.W, "run %s: %d games, %d players, %d rounds, %d tiles, %dd%d, jail on tile %d after %d doubles\n",
		s.RunID, len(s.Games), cfg.Players, cfg.Rounds, cfg.Tiles, cfg.Dice, cfg.DiceSides, cfg.JailTile, cfg.DoublesForJail)
	for _, g := range s.Games {
		fmt.Fprintf(r.W, "game %d: %v\n", g.Game, []int(g.Tiles))
	}
	fmt.Fprintln(r.W)

	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "TILE\tVISITS\tSHARE\tPER GAME\t")
	for tile, visits := range s.Totals {
		fmt.Fprintf(tw, "%d\t%d\t%.2f%%\t%.2f\t\n", tile, visits, s.Share[tile]*100, s.Mean[tile])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	_, err := fmt.Fprintf(r.W, "\nrolls %d, jailings %d, escapes %d\n", s.Rolls, s.Jailings, s.Escapes)
	return err
}
