package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_CarriesRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("info", "json", "run-42", &buf)

	logger.Info("hello")

	require.Contains(t, buf.String(), `"run_id":"run-42"`)
	require.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			logger := newLogger(tc.level, "text", "r", &bytes.Buffer{})
			require.True(t, logger.Enabled(context.Background(), tc.want))
			if tc.want > slog.LevelDebug {
				require.False(t, logger.Enabled(context.Background(), tc.want-4))
			}
		})
	}
}
