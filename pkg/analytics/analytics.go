// Package analytics derives writing statistics from a snapshot of entries.
// Every function is pure given the entries and now.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// WordsPerPage converts words to manuscript pages.
const WordsPerPage = 250

// TotalWords sums the word counts.
func TotalWords(entries []journal.Entry) int {
	total := 0
	for _, e := range entries {
		total += e.WordCount
	}
	return total
}

// TotalPages is TotalWords / WordsPerPage, rounded down.
func TotalPages(totalWords int) int {
	if totalWords <= 0 {
		return 0
	}
	return totalWords / WordsPerPage
}

// dayKeys returns distinct entry days in loc, newest first.
func dayKeys(entries []journal.Entry, loc *time.Location) []string {
	seen := make(map[string]bool, len(entries))
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		k := timeutil.DayKey(e.Date.In(loc))
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// Streak counts consecutive days with at least one entry, stepping back from
// the day of now. Entry days after now are skipped. A day without entries
// ends the walk, so no entry today means a streak of 0.
func Streak(entries []journal.Entry, now time.Time) int {
	loc := now.Location()
	cursor := timeutil.StartOfDay(now)
	streak := 0
	for _, day := range dayKeys(entries, loc) {
		key := timeutil.DayKey(cursor)
		if day > key {
			continue
		}
		if day != key {
			break
		}
		streak++
		cursor = timeutil.AddDays(cursor, -1)
	}
	return streak
}

// AverageWordsPerDay divides total words by the whole 24 hour days elapsed
// since the first entry (at least 1), rounding down.
func AverageWordsPerDay(entries []journal.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	earliest := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(earliest) {
			earliest = e.Date
		}
	}
	days := int(now.Sub(earliest) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return TotalWords(entries) / days
}

// WordsByDay sums word counts per local calendar day.
func WordsByDay(entries []journal.Entry, loc *time.Location) map[string]int {
	out := make(map[string]int)
	for _, e := range entries {
		out[timeutil.DayKey(e.Date.In(loc))] += e.WordCount
	}
	return out
}

// WordRecord is the highest single-day word total, or 0.
func WordRecord(entries []journal.Entry, loc *time.Location) int {
	best := 0
	for _, n := range WordsByDay(entries, loc) {
		if n > best {
			best = n
		}
	}
	return best
}

// AverageGoalTime averages the wall clock time of day of the timestamps and
// formats it as "HH:MM", or "N/A" when there are none.
func AverageGoalTime(times []time.Time) string {
	if len(times) == 0 {
		return "N/A"
	}
	sum := 0
	for _, t := range times {
		sum += timeutil.MinutesOfDay(t)
	}
	avg := sum / len(times)
	return fmt.Sprintf("%02d:%02d", avg/60, avg%60)
}
