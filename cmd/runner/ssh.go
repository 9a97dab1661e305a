package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the SSH server for remote play",
	Long: `Start an SSH server that runs one game per connection.

Scores submitted over SSH go to the same database as the HTTP server and are
attributed to the connection's remote address. The database, share link and
geolocation settings come from the server config (see 'runner serve --help').

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

Examples:
  runner ssh                           # Listen on :23234 with auto-generated key
  runner ssh --ssh :2222               # Listen on port 2222
  runner ssh --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	sshCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server config YAML")
	sshCmd.Flags().StringVar(&flagEnvFile, "env", ".env", "Env file to load before reading the environment")
}

func runSSH(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "runner-ssh")
	if err != nil {
		return err
	}

	serverCfg, err := loadServerConfig(cmd, flagServerConfig, flagEnvFile)
	if err != nil {
		return err
	}

	svc, store, err := openService(serverCfg, logger)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be recorded", "error", err)
	} else {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		ShareURL:    serverCfg.ShareURL,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, svc, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
