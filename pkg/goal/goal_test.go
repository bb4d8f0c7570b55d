package goal

import (
	"testing"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.Local)
}

func TestCheckRecordsFirstCrossingOnly(t *testing.T) {
	tr := NewTracker(500, nil, nil)

	if tr.Check(at(10, 9), 200) {
		t.Fatalf("goal should not be reached at 200 words")
	}
	if !tr.Check(at(10, 11), 520) {
		t.Fatalf("goal should be reached at 520 words")
	}
	if tr.Check(at(10, 15), 900) {
		t.Fatalf("second crossing on the same day must not report")
	}
	if got := tr.ReachedTimes["2024-03-10"]; !got.Equal(at(10, 11)) {
		t.Fatalf("reached time overwritten: %v", got)
	}
	if !tr.History.Achieved(at(10, 23)) {
		t.Fatalf("history not recorded")
	}
}

func TestCheckHonoursHistoryReplacedMidDay(t *testing.T) {
	tr := NewTracker(500, nil, nil)
	if tr.Check(at(10, 8), 100) {
		t.Fatalf("goal should not be reached at 100 words")
	}

	// Another writer recorded the crossing at 09:00.
	tr.History = History{"2024-03-10": true}
	tr.ReachedTimes = ReachedTimes{"2024-03-10": at(10, 9)}

	if tr.Check(at(10, 10), 900) {
		t.Fatalf("a day already in history must not be recorded again")
	}
	if got := tr.ReachedTimes["2024-03-10"]; !got.Equal(at(10, 9)) {
		t.Fatalf("first crossing overwritten: %v", got)
	}
}

func TestRolloverClearsReachedToday(t *testing.T) {
	tr := NewTracker(100, nil, nil)
	tr.Check(at(10, 9), 150)
	if !tr.ReachedToday() {
		t.Fatalf("expected reached today")
	}
	if !tr.Rollover(at(11, 0)) {
		t.Fatalf("expected day change")
	}
	if tr.ReachedToday() {
		t.Fatalf("flag should clear on a new day")
	}
	if !tr.Check(at(11, 8), 100) {
		t.Fatalf("goal should be reachable again on a new day")
	}
}

func TestTrackerHonoursExistingHistory(t *testing.T) {
	tr := NewTracker(100, History{"2024-03-10": true}, nil)
	if tr.Check(at(10, 20), 400) {
		t.Fatalf("already recorded day must not be recorded again")
	}
}

func TestWordsOn(t *testing.T) {
	entries := []journal.Entry{
		{Date: at(10, 8), WordCount: 10},
		{Date: at(10, 22), WordCount: 5},
		{Date: at(11, 1), WordCount: 100},
	}
	if got := WordsOn(entries, at(10, 12)); got != 15 {
		t.Fatalf("expected 15 words, got %d", got)
	}
}

func TestDaysNewestFirst(t *testing.T) {
	h := History{"2024-03-08": true, "2024-03-10": true}
	days := Days(h, at(11, 14))
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	want := []bool{false, true, false, true}
	for i, d := range days {
		if d.Achieved != want[i] {
			t.Fatalf("day %d (%s): achieved=%v want %v", i, d.Date.Format("2006-01-02"), d.Achieved, want[i])
		}
	}
	if days[0].Date.Day() != 11 || days[3].Date.Day() != 8 {
		t.Fatalf("unexpected order: first %v last %v", days[0].Date, days[3].Date)
	}
}

func TestDaysEmptyHistoryIsToday(t *testing.T) {
	days := Days(nil, at(11, 14))
	if len(days) != 1 || days[0].Achieved {
		t.Fatalf("unexpected days %+v", days)
	}
}
