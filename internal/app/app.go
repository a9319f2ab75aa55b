package app

import (
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/vk/boardsim/internal/batch"
	"github.com/vk/boardsim/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	runID  string

	runner     atomic.Pointer[batch.Runner]
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, runID, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
		runID:  runID,
	}
}

// RunID identifies this run in logs and reports.
func (a *App) RunID() string {
	return a.runID
}
