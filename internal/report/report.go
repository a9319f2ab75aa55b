// Package report delivers batch statistics to their consumers: the log, the
// terminal, or a socket.io endpoint.
package report

import (
	"context"
	"errors"

	"github.com/vk/boardsim/internal/stats"
)

// Reporter receives the summary of a finished batch.
type Reporter interface {
	Report(ctx context.Context, summary stats.Summary) error
}

// Multi fans a summary out to every reporter. All reporters run even if one
// fails; their errors are joined.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, summary stats.Summary) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
