package timeutil

import (
	"strings"
	"time"
)

// LayoutDay is the canonical calendar day key, e.g. "2024-09-17".
const LayoutDay = "2006-01-02"

// StartOfDay returns local midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping wall clock time across DST.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from a to b. It is negative when b
// is before a.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	// UTC dates avoid DST making a day 23 or 25 hours long.
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DayKey formats the calendar day of t as "2006-01-02".
func DayKey(t time.Time) string {
	return t.Format(LayoutDay)
}

// ParseDay parses a "2006-01-02" key as local midnight.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutDay, strings.TrimSpace(key), time.Local)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MinutesOfDay returns hours*60+minutes of t's wall clock.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
