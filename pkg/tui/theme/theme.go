package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/writersblock/pkg/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Stats    StatsTheme
	Calendar calendar.Options
	Modal    ModalTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Input  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// StatsTheme styles the numbers on the dashboard.
type StatsTheme struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	Rank     lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
	Reached  lipgloss.Style
	Muted    lipgloss.Style
}

// ModalTheme styles centered modal overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: muted,
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Input:  lipgloss.NewStyle().Foreground(accent),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle(),
		},
		Stats: StatsTheme{
			Label:    muted,
			Value:    lipgloss.NewStyle().Bold(true),
			Rank:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
			BarFull:  lipgloss.NewStyle().Foreground(accent),
			BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Reached:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Muted:    muted,
		},
		Calendar: calendar.DefaultOptions(),
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// Plain returns a theme without colors, used by tests and dumb terminals.
func Plain() Theme {
	plain := lipgloss.NewStyle()
	t := Default()
	t.Footer = FooterTheme{Help: plain, Status: plain, Error: plain, Input: plain}
	t.Panel.Title = plain
	t.Stats = StatsTheme{Label: plain, Value: plain, Rank: plain, BarFull: plain, BarEmpty: plain, Reached: plain, Muted: plain}
	t.Calendar = calendar.PlainOptions()
	return t
}
