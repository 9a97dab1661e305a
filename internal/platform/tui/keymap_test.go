package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestActionFor(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"r", runeKey('r'), core.ActionRestart},
		{"t", runeKey('t'), core.ActionToggleSkin},
		{"m", runeKey('m'), core.ActionToggleSound},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.ActionFor(tt.msg); got != tt.want {
				t.Errorf("ActionFor(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestPanelHelpBindings(t *testing.T) {
	k := DefaultKeyMap()

	editing := panelHelp{k: k, editing: true}.ShortHelp()
	if len(editing) != 4 {
		t.Errorf("editing help has %d bindings, want 4", len(editing))
	}

	plain := len(panelHelp{k: k}.ShortHelp())
	sharing := len(panelHelp{k: k, sharing: true}.ShortHelp())
	if sharing != plain+2 {
		t.Errorf("sharing help has %d bindings, want %d", sharing, plain+2)
	}
}
