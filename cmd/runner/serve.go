package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/server"
)

var (
	flagAddr         string
	flagServerConfig string
	flagEnvFile      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the leaderboard HTTP server",
	Long: `Start the HTTP server that records and serves scores.

Endpoints:
  POST /score        - Submit {"name": "...", "score": N}
  GET  /scores       - Top scores as JSON
  GET  /scores/live  - WebSocket feed of accepted scores
  GET  /admin        - HTML table of every submission

Configuration is read from --server-config (or ~/.runner/configs/server.yaml,
./configs/server.yaml, built-in defaults), then from the environment and the
--env file: PORT, RUNNER_ADDR, RUNNER_DB, RUNNER_GEO_URL, RUNNER_GEO_TIMEOUT,
RUNNER_CORS_ORIGIN, RUNNER_SHARE_URL, RUNNER_LEADERBOARD_SIZE.

Examples:
  runner serve
  runner serve --addr :8080
  runner serve --server-config ./server.yaml --env .env.production`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config and environment)")
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server config YAML")
	serveCmd.Flags().StringVar(&flagEnvFile, "env", ".env", "Env file to load before reading the environment")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "runner")
	if err != nil {
		return err
	}

	cfg, err := loadServerConfig(cmd, flagServerConfig, flagEnvFile)
	if err != nil {
		return err
	}
	if flagAddr != "" {
		cfg.Address = flagAddr
	}

	svc, store, err := openService(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	srv := server.New(server.Config{
		Address:    cfg.Address,
		CORSOrigin: cfg.CORSOrigin,
	}, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("leaderboard server ready",
		"address", srv.Addr(),
		"db", cfg.DBPath,
		"geo", cfg.Geo.Enabled,
	)
	return srv.ListenAndServe(ctx)
}
