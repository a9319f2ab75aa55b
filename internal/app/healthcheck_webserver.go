package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/boardsim/internal/ctxlog"
)

// progress is the body served on /progress.
type progress struct {
	RunID      string `json:"run_id"`
	GamesTotal int    `json:"games_total"`
	GamesDone  int    `json:"games_done"`
}

// healthHandler reports that the process is alive.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// progressHandler reports how far the batch has got.
func (a *App) progressHandler(w http.ResponseWriter, r *http.Request) {
	body := progress{RunID: a.runID}
	if runner := a.runner.Load(); runner != nil {
		body.GamesTotal = runner.Total()
		body.GamesDone = runner.Progress()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("Failed to write progress.", "error", err)
	}
}

func (a *App) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/progress", a.progressHandler)
	return mux
}

// startHealthcheckServer runs the health and progress HTTP server in the
// background.
func (a *App) startHealthcheckServer(ctx context.Context, port int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Configuring health check server.")

	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:    addr,
		Handler: a.handler(),
	}

	go func() {
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeHealthcheckServer(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("Health check server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	logger.Debug("Shutting down health check server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.Error("Health check server shutdown failed", "error", err)
		return err
	}
	return nil
}
