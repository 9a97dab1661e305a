package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/client"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagServerURL string
	flagShareURL  string
	flagOffline   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W - Jump (press again in the air to double jump)
  T          - Switch skin
  M          - Mute jump sounds
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

After a game over type a name and press Enter to submit the score. With
--server the score goes to that leaderboard server, otherwise it is stored
in the local database.

Difficulty options:
  easy   - Slower start and gentler ramp
  normal - Default settings
  hard   - Faster start and steeper ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty hard
  runner play --server http://localhost:3000
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagServerURL, "server", "", "Leaderboard server URL (default: local database)")
	playCmd.Flags().StringVar(&flagShareURL, "share-url", "", "Page offered as share link (default: the server URL)")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Play without recording scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var backend tui.Backend
	switch {
	case flagOffline:
	case flagServerURL != "":
		backend = tui.NewRemoteBackend(client.New(flagServerURL, 5*time.Second), flagShareURL)
	default:
		serverCfg := config.DefaultServerConfig()
		serverCfg.DBPath = flagDBPath
		serverCfg.Geo.Enabled = false

		// The TUI owns the terminal, keep service logs off it
		svc, store, err := openService(serverCfg, log.New(io.Discard))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Continue without storage - game still works
		} else {
			defer store.Close()
			backend = tui.NewLocalBackend(svc, "127.0.0.1", flagShareURL)
		}
	}

	if err := tui.Run(runner.New(), backend, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
