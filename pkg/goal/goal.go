// Package goal records, per calendar day, whether the daily word count goal
// was reached and when.
package goal

import (
	"sort"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// History maps a day key ("2006-01-02", local) to whether the goal was reached.
type History map[string]bool

// ReachedTimes maps a day key to the moment the goal was first reached.
type ReachedTimes map[string]time.Time

// Achieved reports whether the goal was reached on the day containing t.
func (h History) Achieved(t time.Time) bool {
	return h[timeutil.DayKey(t)]
}

// Times returns the recorded timestamps, oldest first.
func (r ReachedTimes) Times() []time.Time {
	out := make([]time.Time, 0, len(r))
	for _, t := range r {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Tracker watches cumulative words for the current day.
type Tracker struct {
	Goal         int
	History      History
	ReachedTimes ReachedTimes

	reachedToday bool
	day          string
}

// NewTracker returns a tracker over existing records. Nil maps are allocated.
func NewTracker(goal int, history History, reached ReachedTimes) *Tracker {
	if history == nil {
		history = History{}
	}
	if reached == nil {
		reached = ReachedTimes{}
	}
	return &Tracker{Goal: goal, History: history, ReachedTimes: reached}
}

// Rollover clears the in-memory "reached today" flag when the day of now
// differs from the last day seen. It returns true when the day changed.
func (t *Tracker) Rollover(now time.Time) bool {
	key := timeutil.DayKey(now)
	if key == t.day {
		return false
	}
	changed := t.day != ""
	t.day = key
	t.reachedToday = t.History[key]
	return changed
}

// ReachedToday reports whether the goal is already met for the current day.
func (t *Tracker) ReachedToday() bool {
	return t.reachedToday
}

// Check records the goal for today the first time wordsToday crosses it and
// returns true only on that crossing. Once a day is recorded it is not reset.
func (t *Tracker) Check(now time.Time, wordsToday int) bool {
	t.Rollover(now)
	key := timeutil.DayKey(now)
	// History may have been reloaded with a day another writer recorded.
	if t.History[key] {
		t.reachedToday = true
	}
	if t.reachedToday || t.Goal <= 0 || wordsToday < t.Goal {
		return false
	}
	t.History[key] = true
	t.ReachedTimes[key] = now
	t.reachedToday = true
	return true
}

// WordsOn sums word counts of entries dated on the day of t.
func WordsOn(entries []journal.Entry, t time.Time) int {
	total := 0
	for _, e := range entries {
		if timeutil.SameDay(t, e.Date) {
			total += e.WordCount
		}
	}
	return total
}

// Day is one row of the goal history view.
type Day struct {
	Date     time.Time `json:"date"`
	Achieved bool      `json:"achieved"`
}

// Days lists every day from the earliest recorded day through today, newest
// first. Days without a record are not achieved.
func Days(history History, now time.Time) []Day {
	today := timeutil.StartOfDay(now)
	first := today
	for key := range history {
		d, err := time.ParseInLocation(timeutil.LayoutDay, key, now.Location())
		if err != nil {
			continue
		}
		if d.Before(first) {
			first = d
		}
	}
	n := timeutil.DaysBetween(first, today) + 1
	out := make([]Day, 0, n)
	for d := today; !d.Before(first); d = timeutil.AddDays(d, -1) {
		out = append(out, Day{Date: d, Achieved: history[timeutil.DayKey(d)]})
	}
	return out
}
