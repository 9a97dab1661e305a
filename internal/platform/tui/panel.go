package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

const panelTableHeight = 5

var (
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var shareStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("57")).
	Padding(0, 1)

// panel is the game-over area under the playfield: name input, status line,
// leaderboard table and share box.
type panel struct {
	name       textinput.Model
	table      table.Model
	rows       []leaderboard.Row
	score      int
	status     string
	isError    bool
	shareLink  string
	sharing    bool
	submitting bool
	submitted  bool
	width      int
}

func newPanel(width int) panel {
	ti := textinput.New()
	ti.Placeholder = leaderboard.Anonymous
	ti.Prompt = "Name: "
	ti.CharLimit = leaderboard.MaxNameLength
	ti.Width = leaderboard.MaxNameLength

	return panel{
		name:  ti,
		table: newLeaderboardTable(width, panelTableHeight),
		width: width,
	}
}

// open prepares the panel for a finished run and focuses the name field.
// The typed name and the last leaderboard survive between runs.
func (p *panel) open(score int) tea.Cmd {
	p.score = score
	p.status = "Loading leaderboard..."
	p.isError = false
	p.sharing = false
	p.submitting = false
	p.submitted = false
	return p.name.Focus()
}

func (p *panel) resize(width int) {
	p.width = width
	p.table = newLeaderboardTable(width, panelTableHeight)
	p.table.SetRows(leaderboardRows(p.rows))
}

func (p *panel) setRows(rows []leaderboard.Row) {
	p.rows = rows
	p.table.SetRows(leaderboardRows(rows))
	p.table.GotoTop()
}

func (p *panel) notify(text string, isError bool) {
	p.status = text
	p.isError = isError
}

func (p *panel) reveal(link string) {
	if link == "" {
		return
	}
	p.shareLink = link
	p.sharing = true
}

func (p *panel) closeShare() {
	p.sharing = false
}

func (p panel) view(helpView string) string {
	var b strings.Builder

	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("Game over. Score %d", p.score)))
	b.WriteString("\n")
	b.WriteString(p.name.View())
	b.WriteString("\n")

	if p.isError {
		b.WriteString(errorStyle.Render(p.status))
	} else {
		b.WriteString(statusStyle.Render(p.status))
	}
	b.WriteString("\n")

	if len(p.rows) == 0 {
		b.WriteString(statusStyle.Italic(true).Render("No scores recorded yet."))
	} else {
		b.WriteString(p.table.View())
	}

	if p.sharing {
		b.WriteString("\n")
		b.WriteString(shareStyle.Render("Share: " + p.shareLink))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(helpView))
	return b.String()
}
