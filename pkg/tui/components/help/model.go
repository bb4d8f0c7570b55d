// Package help shows a scrollable markdown overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/writersblock/pkg/tui/theme"
)

const (
	minWidth  = 32
	minHeight = 8
)

// Model renders markdown with glamour inside a framed viewport.
type Model struct {
	title    string
	markdown string
	style    string
	th       theme.ModalTheme

	viewport viewport.Model
	width    int
	height   int
	err      error
}

// New builds an overlay for markdown. Style is a glamour standard style:
// "dark", "light" or "notty".
func New(title, markdown, style string, th theme.ModalTheme) *Model {
	if style == "" {
		style = "dark"
	}
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	return &Model{
		title:    title,
		markdown: strings.TrimSpace(markdown),
		style:    style,
		th:       th,
		viewport: vp,
	}
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the title and the visible part of the document.
func (m *Model) View() string {
	body := m.viewport.View()
	if m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	if m.title != "" {
		body = m.th.Title.Render(m.title) + "\n" + body
	}
	return m.th.Frame.Width(m.width).Height(m.height).Render(m.th.Body.Render(body))
}

// SetStyle switches the glamour style and re-renders.
func (m *Model) SetStyle(style string) {
	if style == "" || style == m.style {
		return
	}
	m.style = style
	m.render()
}

// SetSize fits the overlay into width x height cells.
func (m *Model) SetSize(width, height int) {
	width = max(width, minWidth)
	height = max(height, minHeight)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height

	inner := m.height - m.th.Frame.GetVerticalFrameSize()
	if m.title != "" {
		inner--
	}
	m.viewport.SetWidth(m.innerWidth())
	m.viewport.SetHeight(max(inner, 1))
	m.render()
}

func (m *Model) innerWidth() int {
	return max(m.width-m.th.Frame.GetHorizontalFrameSize(), 1)
}

func (m *Model) render() {
	if m.width == 0 {
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(max(m.innerWidth()-2, 10)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(m.markdown); err == nil {
			m.err = nil
			m.viewport.SetContent(strings.TrimRight(out, "\n"))
			m.viewport.SetYOffset(0)
			return
		}
	}
	m.err = err
}
