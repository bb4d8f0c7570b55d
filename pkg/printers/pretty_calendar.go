package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/goal"
)

// CalendarOptions follows fatih/color's terminal detection so piped output
// stays plain.
func CalendarOptions() calendar.Options {
	if color.NoColor {
		return calendar.PlainOptions()
	}
	return calendar.DefaultOptions()
}

func (pp *PrettyPrint) Calendar(m calendar.Month, grid [calendar.Cells]calendar.Cell, today time.Time) {
	opts := CalendarOptions()
	_, _ = fmt.Fprintln(pp.out(), calendar.Render(m, grid, today, opts))
	pp.NewLine()
	if !color.NoColor {
		_, _ = fmt.Fprintln(pp.out(), calendar.Legend(opts))
		pp.NewLine()
	}
}

// GoalDays prints the goal history, newest first, with a check or cross.
func (pp *PrettyPrint) GoalDays(days []goal.Day) {
	if len(days) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " no goal history\n\n")
		return
	}
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		mark := red.Sprint("✗")
		if d.Achieved {
			mark = green.Sprint("✓")
		}
		tbl.AddRow(mark, d.Date.Format("Mon Jan 2, 2006"))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
