package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// minGameRows keeps the playfield visible when the panel is tall.
const minGameRows = 6

// submittedMsg carries the result of a score submission.
type submittedMsg struct {
	err error
	gen int
}

func submitCmd(b Backend, name string, score, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return submittedMsg{err: b.Submit(ctx, name, score), gen: gen}
	}
}

// Option configures a Model.
type Option func(*Model)

// WithOutput sets where bell cues and clipboard sequences are written.
// Run and the SSH server pass the writer the renderer uses.
// SSH sessions pass the session; local play passes stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Model) {
		m.out = w
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// Model is the Bubble Tea model for the runner. While running it schedules
// one tick at a time; once the game stops no tick is scheduled until the
// player restarts.
type Model struct {
	game       *runner.Game
	backend    Backend // nil for offline play without a leaderboard
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	panel      panel
	inputFrame core.InputFrame
	out        io.Writer
	gen        int // Bumped on restart; results from older runs only refresh rows
	stopped    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, backend Backend, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		backend:    backend,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		panel:      newPanel(cfg.ScreenW),
		inputFrame: core.NewInputFrame(),
		out:        io.Discard,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the game, the tick loop and a leaderboard fetch for the HUD
// high score.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.backend != nil {
		cmds = append(cmds, fetchLeaderboardCmd(m.backend, false, m.gen))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case leaderboardMsg:
		return m.handleLeaderboard(msg)

	case submittedMsg:
		return m.handleSubmitted(msg)

	case copiedMsg:
		if msg.err != nil {
			m.panel.notify("Copy failed: "+msg.err.Error(), true)
		} else {
			m.panel.notify("Link copied to clipboard", false)
		}
		m.panel.closeShare()
		return m, nil
	}

	// Cursor blink and other widget messages
	if m.stopped && m.panel.name.Focused() {
		var cmd tea.Cmd
		m.panel.name, cmd = m.panel.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input. During play keys become actions for
// the next tick; after game over they drive the panel.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.stopped {
		return m.handlePanelKey(msg)
	}

	action := m.keys.ActionFor(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.panel.name.Focused() {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ForceRetry):
			return m.restart()
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Blur):
			m.panel.name.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.panel.name, cmd = m.panel.name.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.EditName):
		return m, m.panel.name.Focus()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Copy):
		if m.panel.sharing {
			return m, copyCmd(m.out, m.panel.shareLink)
		}
	case key.Matches(msg, m.keys.CloseShare):
		m.panel.closeShare()
	case key.Matches(msg, m.keys.Skin), key.Matches(msg, m.keys.Sound):
		// Toggles apply while stopped; the game ignores everything else
		in := core.NewInputFrame()
		in.Set(m.keys.ActionFor(msg))
		m.game.Step(in)
	}
	return m, nil
}

// submit sends the current name and score once per run.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch {
	case m.backend == nil:
		m.panel.notify("No score server configured", true)
		return m, nil
	case m.panel.submitting:
		return m, nil
	case m.panel.submitted:
		m.panel.notify("Score already submitted", false)
		return m, nil
	}

	m.panel.submitting = true
	m.panel.name.Blur()
	m.panel.notify("Submitting...", false)
	return m, submitCmd(m.backend, m.panel.name.Value(), m.panel.score, m.gen)
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		if msg.err == nil {
			return m, fetchLeaderboardCmd(m.backend, false, m.gen)
		}
		return m, nil
	}

	m.panel.submitting = false
	if msg.err != nil {
		m.panel.notify("Submit failed: "+msg.err.Error(), true)
		return m, nil
	}
	m.panel.submitted = true
	m.panel.notify("Score submitted, loading leaderboard...", false)
	return m, fetchLeaderboardCmd(m.backend, true, m.gen)
}

func (m Model) handleLeaderboard(msg leaderboardMsg) (tea.Model, tea.Cmd) {
	current := m.stopped && msg.gen == m.gen

	if msg.err != nil {
		if current {
			m.panel.notify("Leaderboard unavailable: "+msg.err.Error(), true)
		}
		return m, nil
	}

	m.panel.setRows(msg.rows)
	if len(msg.rows) > 0 {
		m.game.SetHighScore(msg.rows[0].Score)
	}

	if !current {
		return m, nil
	}
	switch {
	case msg.reveal:
		m.panel.reveal(m.backend.ShareLink())
		m.panel.notify(fmt.Sprintf("Submitted %d as %s", m.panel.score, leaderboard.NameOrAnonymous(m.panel.name.Value())), false)
	case !m.panel.submitting && !m.panel.submitted:
		m.panel.notify("Type your name and press enter to submit", false)
	}
	return m, nil
}

// handleResize processes window resize events. The world scales onto
// whatever size the terminal has, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.panel.resize(msg.Width)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next tick unless
// the game just stopped.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	var cmds []tea.Cmd
	if result.Has(core.EventJump) {
		if cue := m.game.JumpCue(); cue != "" {
			cmds = append(cmds, bellCmd(m.out, cue))
		}
	}

	if result.State.GameOver {
		m.stopped = true
		cmds = append(cmds, m.panel.open(result.State.Score))
		if m.backend != nil {
			cmds = append(cmds, fetchLeaderboardCmd(m.backend, false, m.gen))
		} else {
			m.panel.notify("Offline, scores are not recorded", false)
		}
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// restart starts a fresh session and re-enters the tick loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen++
	m.stopped = false
	m.panel.name.Blur()
	m.panel.closeShare()
	m.game.Restart()
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield with the help bar, or with the game-over
// panel underneath once stopped.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var below string
	if m.stopped {
		below = m.panel.view(m.help.View(panelHelp{
			k:       m.keys,
			editing: m.panel.name.Focused(),
			sharing: m.panel.sharing,
		}))
	} else {
		below = helpBarStyle.Render(m.help.View(playHelp{k: m.keys}))
	}

	rows := max(m.config.ScreenH-lipgloss.Height(below), minGameRows)
	m.screen.Resize(m.config.ScreenW, rows)
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + below
}

// Stopped reports whether the game-over panel is showing.
func (m Model) Stopped() bool {
	return m.stopped
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game *runner.Game, backend Backend, cfg core.RuntimeConfig, opts ...Option) error {
	out := newSyncOutput(os.Stdout)
	model := NewModel(game, backend, cfg, append(opts, WithOutput(out))...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithOutput(out),
	)

	_, err := p.Run()
	return err
}
