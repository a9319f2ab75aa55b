package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InvalidHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		simulation {
			players = 4
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "sim.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, logs, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to parse HCL file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	config := `
		simulation {
		  games   = 2
		  players = 1
		  rounds  = 1
		  dice    = 1
		}
	`
	filePath := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(config), 0600))
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"--seed=5", "--workers=2", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "2 games, 1 players, 1 rounds, 40 tiles, 1d6")
	require.Contains(t, out.String(), "game 0:")
	require.Contains(t, out.String(), "game 1:")
	require.Contains(t, logs.String(), "Simulation finished.")
}
