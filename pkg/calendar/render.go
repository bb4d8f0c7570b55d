package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/writersblock/pkg/timeutil"
)

// Options controls grid styling.
type Options struct {
	HeaderStyle    lipgloss.Style
	EmptyStyle     lipgloss.Style
	BeforeAppStyle lipgloss.Style
	CompletedStyle lipgloss.Style
	MissedStyle    lipgloss.Style
	FutureStyle    lipgloss.Style
	TodayStyle     lipgloss.Style
	ShowHeader     bool
	ShowTitle      bool
}

// DefaultOptions returns the styling used by the CLI and dashboard.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BeforeAppStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		CompletedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		MissedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		FutureStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		TodayStyle:     lipgloss.NewStyle().Underline(true).Bold(true),
		ShowHeader:     true,
		ShowTitle:      true,
	}
}

// PlainOptions renders without any styling.
func PlainOptions() Options {
	plain := lipgloss.NewStyle()
	return Options{
		HeaderStyle:    plain,
		EmptyStyle:     plain,
		BeforeAppStyle: plain,
		CompletedStyle: plain,
		MissedStyle:    plain,
		FutureStyle:    plain,
		TodayStyle:     plain,
		ShowHeader:     true,
		ShowTitle:      true,
	}
}

// Render draws the grid as text. Weeks that hold only placeholders are
// omitted.
func Render(m Month, grid [Cells]Cell, today time.Time, opts Options) string {
	var lines []string
	if opts.ShowTitle {
		title := m.String()
		pad := (len("Su Mo Tu We Th Fr Sa") - len(title)) / 2
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, opts.HeaderStyle.Render(strings.Repeat(" ", pad)+title))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	for row := 0; row < Cells/7; row++ {
		week := grid[row*7 : row*7+7]
		if blankWeek(week) {
			continue
		}
		cells := make([]string, 0, 7)
		for _, c := range week {
			cells = append(cells, renderCell(c, today, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func blankWeek(week []Cell) bool {
	for _, c := range week {
		if c.Day != 0 {
			return false
		}
	}
	return true
}

func renderCell(c Cell, today time.Time, opts Options) string {
	if c.Day == 0 {
		return opts.EmptyStyle.Render("  ")
	}
	style := opts.EmptyStyle
	switch c.Status {
	case BeforeApp:
		style = opts.BeforeAppStyle
	case Completed:
		style = opts.CompletedStyle
	case Missed:
		style = opts.MissedStyle
	case Future:
		style = opts.FutureStyle
	}
	if timeutil.SameDay(c.Date, today) {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

// Legend explains the status styling.
func Legend(opts Options) string {
	return strings.Join([]string{
		opts.CompletedStyle.Render("■") + " written",
		opts.MissedStyle.Render("■") + " missed",
		opts.FutureStyle.Render("■") + " upcoming",
	}, "  ")
}
