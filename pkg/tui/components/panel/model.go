// Package panel defines framed panels for the dashboard.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/writersblock/pkg/tui/theme"
)

// Row is a label and its value, aligned in a column.
type Row struct {
	Label string
	Value string
	// Mark is appended after the value, for example a reached goal check.
	Mark string
}

// Model renders a titled box holding free lines or aligned rows.
type Model struct {
	title string
	lines []string
	width int
	th    theme.PanelTheme
}

func New(th theme.PanelTheme) Model {
	return Model{th: th}
}

// SetContent replaces the body with lines rendered as given.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetRows replaces the body with rows whose values line up.
func (m *Model) SetRows(title string, rows []Row, label, value lipgloss.Style) {
	pad := 0
	for _, r := range rows {
		pad = max(pad, lipgloss.Width(r.Label))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		line := label.Render(r.Label+strings.Repeat(" ", pad-lipgloss.Width(r.Label)+2)) + value.Render(r.Value)
		if r.Mark != "" {
			line += " " + r.Mark
		}
		lines = append(lines, line)
	}
	m.SetContent(title, lines)
}

// SetWidth fixes the outer width. Zero sizes the panel to its content.
func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m Model) View() string {
	var content []string
	if m.title != "" {
		content = append(content, m.th.Title.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.th.Body.Render(line))
	}
	frame := m.th.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	return frame.Render(strings.Join(content, "\n"))
}
