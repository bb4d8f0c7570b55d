package app

import (
	"context"
	"time"

	"tableflip.dev/writersblock/pkg/analytics"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/goal"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// Report bundles the statistics shown on the dashboard for a date range.
type Report struct {
	Range   string            `json:"range"`
	Now     time.Time         `json:"now"`
	Goal    int               `json:"goal"`
	Today   int               `json:"wordsToday"`
	Summary analytics.Summary `json:"summary"`
}

// Report summarizes the entries in r. Goal times are filtered by the same
// range.
func (s *Service) Report(ctx context.Context, r timeutil.DateRange) (Report, error) {
	entries, err := s.Entries(ctx, r)
	if err != nil {
		return Report{}, err
	}
	_, reached, err := s.GoalRecords(ctx)
	if err != nil {
		return Report{}, err
	}
	prefs, err := s.Settings(ctx)
	if err != nil {
		return Report{}, err
	}
	now := s.now()
	times := make([]time.Time, 0, len(reached))
	for _, t := range reached.Times() {
		if r.Contains(t, now) {
			times = append(times, t)
		}
	}
	return Report{
		Range:   r.String(),
		Now:     now,
		Goal:    prefs.WordCountGoal,
		Today:   goal.WordsOn(entries, now),
		Summary: analytics.Summarize(entries, times, now),
	}, nil
}

// Calendar builds the grid for month m from every entry.
func (s *Service) Calendar(ctx context.Context, m calendar.Month) ([calendar.Cells]calendar.Cell, error) {
	dates, err := s.DateSet(ctx)
	if err != nil {
		return [calendar.Cells]calendar.Cell{}, err
	}
	return m.Grid(dates, s.now()), nil
}

// DateSet collects the entry days once so callers can page through months.
func (s *Service) DateSet(ctx context.Context) (calendar.DateSet, error) {
	folders, err := s.Load(ctx)
	if err != nil {
		return calendar.DateSet{}, err
	}
	return calendar.NewDateSet(journal.Flatten(folders), s.now().Location()), nil
}

// GoalDays lists the goal history from the first recorded day to today.
func (s *Service) GoalDays(ctx context.Context) ([]goal.Day, error) {
	history, _, err := s.GoalRecords(ctx)
	if err != nil {
		return nil, err
	}
	return goal.Days(history, s.now()), nil
}

// WordsToday sums the words of entries dated today.
func (s *Service) WordsToday(ctx context.Context) (int, error) {
	folders, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	return goal.WordsOn(journal.Flatten(folders), s.now()), nil
}
