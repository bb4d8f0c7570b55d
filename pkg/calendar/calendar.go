// Package calendar lays out a month as a fixed Sunday-first grid and
// classifies each day against the writing history.
package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// Cells is the size of every month grid: six weeks of seven days.
const Cells = 42

// Status classifies a grid cell.
type Status int

const (
	// Empty is a placeholder before day 1 or after the last day.
	Empty Status = iota
	// BeforeApp is a day before the first entry ever written.
	BeforeApp
	// Completed is a past or current day with at least one entry.
	Completed
	// Missed is a past or current day without entries.
	Missed
	// Future is a day after today.
	Future
)

func (s Status) String() string {
	switch s {
	case BeforeApp:
		return "beforeApp"
	case Completed:
		return "completed"
	case Missed:
		return "missed"
	case Future:
		return "future"
	default:
		return "empty"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cell is one slot of the grid. Day is 0 and Date is zero for placeholders.
type Cell struct {
	Day    int
	Date   time.Time
	Status Status
}

// MarshalJSON writes the date as a "2006-01-02" day key and leaves it out
// for placeholders.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := struct {
		Day    int    `json:"day"`
		Date   string `json:"date,omitempty"`
		Status Status `json:"status"`
	}{Day: c.Day, Status: c.Status}
	if !c.Date.IsZero() {
		out.Date = timeutil.DayKey(c.Date)
	}
	return json.Marshal(out)
}

// DateSet is the set of days holding entries, derived once per render.
type DateSet struct {
	days     map[string]bool
	earliest time.Time
	loc      *time.Location
}

// NewDateSet collects the entry days in loc.
func NewDateSet(entries []journal.Entry, loc *time.Location) DateSet {
	if loc == nil {
		loc = time.Local
	}
	ds := DateSet{days: make(map[string]bool, len(entries)), loc: loc}
	for _, e := range entries {
		d := e.Date.In(loc)
		ds.days[timeutil.DayKey(d)] = true
		if day := timeutil.StartOfDay(d); ds.earliest.IsZero() || day.Before(ds.earliest) {
			ds.earliest = day
		}
	}
	return ds
}

// Has reports whether an entry exists on the day of t.
func (ds DateSet) Has(t time.Time) bool {
	return ds.days[timeutil.DayKey(t)]
}

// Earliest is the first day with an entry, or the zero time.
func (ds DateSet) Earliest() time.Time {
	return ds.earliest
}

// Len is the number of distinct days.
func (ds DateSet) Len() int {
	return len(ds.days)
}

// Classify returns the status of day given today.
func (ds DateSet) Classify(day, today time.Time) Status {
	day = timeutil.StartOfDay(day)
	if !ds.earliest.IsZero() && day.Before(ds.earliest) {
		return BeforeApp
	}
	if !day.After(timeutil.StartOfDay(today)) {
		if ds.Has(day) {
			return Completed
		}
		return Missed
	}
	return Future
}

// GenerateMonthGrid lays out the month: leading placeholders up to the
// weekday of day 1, the days, then trailing placeholders up to Cells.
func GenerateMonthGrid(year int, month time.Month, dates DateSet, today time.Time) [Cells]Cell {
	var grid [Cells]Cell
	loc := dates.loc
	if loc == nil {
		loc = today.Location()
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(first.Weekday())
	n := timeutil.DaysIn(year, month)
	for i := 0; i < n && offset+i < Cells; i++ {
		day := time.Date(year, month, i+1, 0, 0, 0, 0, loc)
		grid[offset+i] = Cell{Day: i + 1, Date: day, Status: dates.Classify(day, today)}
	}
	return grid
}

// Month identifies a calendar page.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next is the following month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev is the preceding month.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Grid generates the grid for m.
func (m Month) Grid(dates DateSet, today time.Time) [Cells]Cell {
	return GenerateMonthGrid(m.Year, m.Month, dates, today)
}

// ParseMonth accepts "2006-01" or "January 2006".
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("calendar: invalid month %q, expected YYYY-MM", s)
}
