package report

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/stats"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Events emitted by Publisher.
const (
	EventGameResult = "game_result"
	EventSummary    = "summary"
)

// PublisherConfig describes the socket.io endpoint results are pushed to.
type PublisherConfig struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// Publisher pushes batch results to a socket.io server.
type Publisher struct {
	io *socket.Socket
}

// DialPublisher connects to cfg.URL and waits for the connection to be
// established.
func DialPublisher(ctx context.Context, cfg PublisherConfig) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("reporter", "socketio", "url", cfg.URL)

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse publish URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q must include scheme and host", cfg.URL)
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to result endpoint.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Connecting to result endpoint...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Report emits one game_result event per game followed by a summary event.
func (p *Publisher) Report(ctx context.Context, s stats.Summary) error {
	logger := ctxlog.FromContext(ctx)
	if !p.io.Connected() {
		return fmt.Errorf("socket.io client is not connected")
	}
	for _, g := range s.Games {
		p.io.Emit(EventGameResult, gamePayload(s.RunID, g.Game, g.Tiles))
	}
	p.io.Emit(EventSummary, summaryPayload(s))
	logger.Debug("Published results.", "games", len(s.Games))
	return nil
}

// Close disconnects from the server.
func (p *Publisher) Close() error {
	p.io.Disconnect()
	return nil
}

func gamePayload(runID string, game int, tiles []int) map[string]any {
	return map[string]any{
		"run_id": runID,
		"game":   game,
		"tiles":  tiles,
	}
}

func summaryPayload(s stats.Summary) map[string]any {
	return map[string]any{
		"run_id":   s.RunID,
		"games":    len(s.Games),
		"config":   s.Config,
		"totals":   s.Totals,
		"share":    s.Share,
		"visits":   s.Visits,
		"rolls":    s.Rolls,
		"jailings": s.Jailings,
		"escapes":  s.Escapes,
	}
}
