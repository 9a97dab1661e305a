package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/client"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagScoresServer string
	flagLimit        int
	flagPlain        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard from a score server or the local database.

Without --plain an interactive table is shown; with --plain the scores are
printed and the command exits.

Examples:
  runner scores
  runner scores --plain --limit 5
  runner scores --server http://localhost:3000`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresServer, "server", "", "Leaderboard server URL (default: local database)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 = whole leaderboard)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the table")
}

// limitBackend trims every leaderboard read to n rows.
type limitBackend struct {
	tui.Backend
	n int
}

func (b limitBackend) Leaderboard(ctx context.Context) ([]leaderboard.Row, error) {
	rows, err := b.Backend.Leaderboard(ctx)
	if err != nil || b.n <= 0 || len(rows) <= b.n {
		return rows, err
	}
	return rows[:b.n], nil
}

func runScores(_ *cobra.Command, _ []string) error {
	var backend tui.Backend
	if flagScoresServer != "" {
		backend = tui.NewRemoteBackend(client.New(flagScoresServer, 5*time.Second), "")
	} else {
		cfg := config.DefaultServerConfig()
		cfg.DBPath = flagDBPath
		cfg.Geo.Enabled = false
		if flagLimit > cfg.LeaderboardSize {
			cfg.LeaderboardSize = flagLimit
		}

		logger, err := newLogger(os.Stderr, "runner")
		if err != nil {
			return err
		}
		svc, store, err := openService(cfg, logger)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		backend = tui.NewLocalBackend(svc, "", "")
	}
	backend = limitBackend{Backend: backend, n: flagLimit}

	if flagPlain {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		rows, err := backend.Leaderboard(ctx)
		if err != nil {
			return fmt.Errorf("error retrieving scores: %w", err)
		}
		printScores(os.Stdout, rows)
		return nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(backend, width, height)
}

func printScores(w io.Writer, rows []leaderboard.Row) {
	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	if len(rows) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'runner play' to set the first high score!")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Name", "Region", "Score")
	for i, r := range rows {
		t.Row(strconv.Itoa(i+1), r.Name, r.Region, strconv.Itoa(r.Score))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", rows[0].Score)
}
