package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/boardsim/internal/hcl"
	"github.com/vk/boardsim/internal/stats"
)

func writeSimulation(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{WorkerCount: 1})
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Output)

	_, err = NewConfig(Config{WorkerCount: 1, Output: "yaml"})
	require.ErrorContains(t, err, "invalid output")

	_, err = NewConfig(Config{WorkerCount: 0})
	require.ErrorContains(t, err, "workers must be at least 1")

	_, err = NewConfig(Config{WorkerCount: 1, HealthcheckPort: -1})
	require.ErrorContains(t, err, "healthcheck port")
}

func TestRun_JSONReport(t *testing.T) {
	t.Parallel()

	path := writeSimulation(t, `
		simulation {
		  games   = 3
		  players = 2
		  rounds  = 10
		}
	`)
	cfg, err := NewConfig(Config{ConfigPath: path, WorkerCount: 2, Seed: 17, Output: "json"})
	require.NoError(t, err)
	testApp, out, logs := SetupAppTest(t, cfg, hcl.NewLoader())

	require.NoError(t, testApp.Run(context.Background()))

	var summary stats.Summary
	require.NoError(t, json.Unmarshal([]byte(out.String()), &summary))
	require.Equal(t, testApp.RunID(), summary.RunID)
	require.Len(t, summary.Games, 3)
	require.Equal(t, 3*2*10, summary.Visits)
	for _, g := range summary.Games {
		require.Equal(t, 20, g.Tiles.Sum())
	}
	require.Contains(t, logs.String(), `"msg":"Batch summary."`)
	require.Contains(t, logs.String(), testApp.RunID())
}

func TestRun_SameSeedSameResult(t *testing.T) {
	t.Parallel()

	run := func(workers int) stats.Summary {
		cfg, err := NewConfig(Config{WorkerCount: workers, Seed: 1234, Output: "json"})
		require.NoError(t, err)
		testApp, out, _ := SetupAppTest(t, cfg, hcl.NewLoader())
		require.NoError(t, testApp.Run(context.Background()))

		var s stats.Summary
		require.NoError(t, json.Unmarshal([]byte(out.String()), &s))
		return s
	}

	a, b := run(1), run(3)
	require.Equal(t, a.Totals, b.Totals)
}

func TestRun_OutputNone(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{WorkerCount: 1, Seed: 3, Output: OutputNone})
	require.NoError(t, err)
	testApp, out, logs := SetupAppTest(t, cfg, hcl.NewLoader())

	require.NoError(t, testApp.Run(context.Background()))
	require.Empty(t, out.String())
	require.Contains(t, logs.String(), `"msg":"Game result."`)
}

func TestRun_InvalidSimulationFile(t *testing.T) {
	t.Parallel()

	path := writeSimulation(t, "simulation {\n tiles = 4\n}\n")
	cfg, err := NewConfig(Config{ConfigPath: path, WorkerCount: 1})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg, hcl.NewLoader())

	err = testApp.Run(context.Background())
	require.ErrorContains(t, err, "failed to resolve configuration")
	require.ErrorContains(t, err, "jail_tile")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{WorkerCount: 1})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg, hcl.NewLoader())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, testApp.Run(ctx), context.Canceled)
}

func TestHealthAndProgressHandlers(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{WorkerCount: 1, Seed: 8, Output: OutputNone})
	require.NoError(t, err)
	testApp, _, _ := SetupAppTest(t, cfg, hcl.NewLoader())
	h := testApp.handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK\n", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/progress", nil))
	var before progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	require.Equal(t, progress{RunID: testApp.RunID()}, before)

	require.NoError(t, testApp.Run(context.Background()))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/progress", nil))
	var after progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	require.Equal(t, 1, after.GamesTotal)
	require.Equal(t, 1, after.GamesDone)
}
