// Package tui hosts the runner in a Bubble Tea program, locally or over SSH.
// It owns the tick loop, key bindings, the game-over panel with the name
// input, leaderboard and share link, and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules exactly one tick. The model asks for the next one only
// after handling the current tick, and not at all while the game is stopped.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
