// runner is an endless side-scrolling runner for the terminal with an
// online leaderboard.
//
// Usage:
//
//	runner play              - Play locally, optionally against a score server
//	runner serve             - Start the leaderboard HTTP server
//	runner ssh               - Start the SSH server for remote play
//	runner scores            - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.runner/scores.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/geo"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an endless runner in your terminal",
	Long: `Runner is a terminal endless runner: jump over obstacles, collect the
blue orbs, dodge the red ones and post your score to a shared leaderboard.

Available commands:
  play     - Play in this terminal
  serve    - Start the leaderboard HTTP server
  ssh      - Start the SSH server for remote play
  scores   - View the leaderboard

Examples:
  runner play
  runner play --server http://localhost:3000
  runner serve --addr :3000
  runner ssh --ssh :2222
  runner scores --plain`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the process logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// openService opens the score database and builds the leaderboard service
// from the server config. The caller closes the returned store.
func openService(cfg config.ServerConfig, logger *log.Logger) (*leaderboard.Service, *storage.Store, error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	opts := []leaderboard.Option{
		leaderboard.WithLogger(logger),
		leaderboard.WithSize(cfg.LeaderboardSize),
	}
	if cfg.Geo.Enabled && cfg.Geo.URL != "" {
		opts = append(opts, leaderboard.WithLocator(geo.NewClient(cfg.Geo.URL, cfg.Geo.Timeout), cfg.Geo.Timeout))
	}
	return leaderboard.New(store, opts...), store, nil
}

// loadServerConfig reads the server config and applies flags the user set
// explicitly on the command line.
func loadServerConfig(cmd *cobra.Command, path, envFile string) (config.ServerConfig, error) {
	cfg, err := config.LoadServer(path, envFile)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}
