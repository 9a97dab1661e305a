// Package server exposes the leaderboard over HTTP: score submission,
// the public top list, an admin table and a live WebSocket feed.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// Config holds the HTTP server settings.
type Config struct {
	// Address is the host:port to listen on (e.g., ":3000").
	Address string

	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS
	// headers; "*" allows any origin.
	CORSOrigin string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":3000",
		CORSOrigin:      "*",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves the leaderboard API.
type Server struct {
	config Config
	scores *leaderboard.Service
	hub    *Hub
	logger *log.Logger
	http   *http.Server
}

// New creates a server over svc and starts its live feed hub. Accepted
// submissions are pushed to feed subscribers until Shutdown.
func New(cfg Config, svc *leaderboard.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Address == "" {
		cfg.Address = DefaultConfig().Address
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	s := &Server{
		config: cfg,
		scores: svc,
		hub:    NewHub(),
		logger: logger,
	}
	go s.hub.Run()
	svc.OnSubmit(s.hub.Broadcast)

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler with CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleSubmit)
	mux.HandleFunc("GET /scores", s.handleScores)
	mux.HandleFunc("GET /scores/live", s.handleLive)
	mux.HandleFunc("GET /admin", s.handleAdmin)

	return s.loggingMiddleware(s.corsMiddleware(mux))
}

// Hub returns the live feed hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled
// or the listener fails, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", s.config.Address)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.hub.Stop()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and disconnects live subscribers.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.hub.Stop()
	return s.http.Shutdown(ctx)
}
