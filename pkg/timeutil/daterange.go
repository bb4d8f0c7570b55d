package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// RangeKind selects how a DateRange filters dates.
type RangeKind string

const (
	RangeAllTime   RangeKind = "all"
	RangeLastMonth RangeKind = "month"
	RangeLastYear  RangeKind = "year"
	RangeCustom    RangeKind = "custom"
)

// DateRange filters entries for the log and the analytics views.
type DateRange struct {
	Kind  RangeKind
	Start time.Time
	End   time.Time
}

// AllTime matches every date.
func AllTime() DateRange { return DateRange{Kind: RangeAllTime} }

// Custom matches dates in [start, end], inclusive on both ends.
func Custom(start, end time.Time) DateRange {
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange{Kind: RangeCustom, Start: start, End: end}
}

// ParseRange accepts "all", "month", "year" or "2024-01-01..2024-02-01".
func ParseRange(raw string) (DateRange, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch RangeKind(raw) {
	case "", RangeAllTime:
		return AllTime(), nil
	case RangeLastMonth, RangeLastYear:
		return DateRange{Kind: RangeKind(raw)}, nil
	}
	from, to, ok := strings.Cut(raw, "..")
	if !ok {
		return DateRange{}, fmt.Errorf("invalid range %q, expected all, month, year or FROM..TO", raw)
	}
	start, err := ParseDay(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid range start %q: %w", from, err)
	}
	end, err := ParseDay(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid range end %q: %w", to, err)
	}
	// The end day is inclusive.
	return Custom(start, AddDays(end, 1).Add(-time.Nanosecond)), nil
}

// Contains reports whether date falls in the range relative to now.
func (r DateRange) Contains(date, now time.Time) bool {
	switch r.Kind {
	case RangeLastMonth:
		return date.After(now.AddDate(0, -1, 0))
	case RangeLastYear:
		return date.After(now.AddDate(-1, 0, 0))
	case RangeCustom:
		return !date.Before(r.Start) && !date.After(r.End)
	default:
		return true
	}
}

// String describes the range for headers.
func (r DateRange) String() string {
	switch r.Kind {
	case RangeLastMonth:
		return "Last Month"
	case RangeLastYear:
		return "Last Year"
	case RangeCustom:
		return fmt.Sprintf("%s - %s", r.Start.Format("Jan 2, 2006"), r.End.Format("Jan 2, 2006"))
	default:
		return "All Time"
	}
}
