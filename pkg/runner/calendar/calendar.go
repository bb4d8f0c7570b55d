// Package calendar prints month grids of writing days.
package calendar

import (
	"context"
	"errors"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/printers"
)

type Calendar struct {
	Service *app.Service
	Month   calendar.Month
	// Months prints this many months ending at Month. Zero means one.
	Months int
	JSON   bool
}

type monthJSON struct {
	Month string          `json:"month"`
	Cells []calendar.Cell `json:"cells"`
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not draw calendar, no service")
	}
	dates, err := c.Service.DateSet(ctx)
	if err != nil {
		return err
	}
	today := c.Service.Clock()

	n := c.Months
	if n <= 0 {
		n = 1
	}
	m := c.Month
	for i := 1; i < n; i++ {
		m = m.Prev()
	}

	pp := printers.PrettyPrint{}
	out := make([]monthJSON, 0, n)
	for i := 0; i < n; i++ {
		grid := m.Grid(dates, today)
		if c.JSON {
			out = append(out, monthJSON{Month: m.String(), Cells: grid[:]})
		} else {
			pp.Calendar(m, grid, today)
		}
		m = m.Next()
	}
	if c.JSON {
		return printers.JSON(nil, out)
	}
	return nil
}
