package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMap defines the key bindings for the runner and its game-over panel.
type KeyMap struct {
	Jump       key.Binding
	Restart    key.Binding
	Skin       key.Binding
	Sound      key.Binding
	Quit       key.Binding
	EditName   key.Binding
	Submit     key.Binding
	Blur       key.Binding
	Copy       key.Binding
	CloseShare key.Binding
	ForceQuit  key.Binding
	ForceRetry key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Skin: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "skin"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		EditName: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "edit name"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		CloseShare: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ForceRetry: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
	}
}

// ActionFor translates a key press during play into a game action.
func (k KeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Skin):
		return core.ActionToggleSkin
	case key.Matches(msg, k.Sound):
		return core.ActionToggleSound
	}
	return core.ActionNone
}

// playHelp shows bindings while the game is running.
type playHelp struct{ k KeyMap }

func (h playHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Jump, h.k.Skin, h.k.Sound, h.k.Quit}
}

func (h playHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// panelHelp shows bindings for the game-over panel.
type panelHelp struct {
	k       KeyMap
	editing bool
	sharing bool
}

func (h panelHelp) ShortHelp() []key.Binding {
	if h.editing {
		return []key.Binding{h.k.Submit, h.k.Blur, h.k.ForceRetry, h.k.ForceQuit}
	}
	bindings := []key.Binding{h.k.Restart, h.k.EditName}
	if h.sharing {
		bindings = append(bindings, h.k.Copy, h.k.CloseShare)
	}
	return append(bindings, h.k.Skin, h.k.Quit)
}

func (h panelHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
