package tui

import (
	"io"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	err error
}

// copyCmd places text on the terminal's clipboard with an OSC 52 sequence.
// w should be the program's own synchronised output.
func copyCmd(w io.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := osc52.New(text).WriteTo(w)
		return copiedMsg{err: err}
	}
}

// bellCmd writes a sound cue. Write errors are ignored.
func bellCmd(w io.Writer, cue string) tea.Cmd {
	return func() tea.Msg {
		_, _ = io.WriteString(w, cue)
		return nil
	}
}
