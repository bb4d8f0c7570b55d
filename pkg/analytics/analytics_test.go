package analytics

import (
	"math"
	"strings"
	"testing"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
)

var now = time.Date(2024, time.May, 15, 18, 30, 0, 0, time.Local)

func entryOn(daysAgo, words int) journal.Entry {
	d := now.AddDate(0, 0, -daysAgo)
	return journal.Entry{ID: journal.NewID(), Date: time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.Local), WordCount: words}
}

func TestTotalWords(t *testing.T) {
	entries := []journal.Entry{entryOn(0, 10), entryOn(1, 32), entryOn(5, 0)}
	if got := TotalWords(entries); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := TotalWords(nil); got != 0 {
		t.Fatalf("expected 0 for no entries, got %d", got)
	}
}

func TestStreak(t *testing.T) {
	tests := map[string]struct {
		entries []journal.Entry
		want    int
	}{
		"none": {
			want: 0,
		},
		"three consecutive days": {
			entries: []journal.Entry{entryOn(0, 1), entryOn(1, 1), entryOn(2, 1), entryOn(4, 1)},
			want:    3,
		},
		"several entries per day": {
			entries: []journal.Entry{entryOn(0, 1), entryOn(0, 2), entryOn(1, 1)},
			want:    2,
		},
		"missed today": {
			entries: []journal.Entry{entryOn(1, 1), entryOn(2, 1), entryOn(3, 1)},
			want:    0,
		},
		"future entry skipped": {
			entries: []journal.Entry{entryOn(-2, 1), entryOn(0, 1), entryOn(1, 1)},
			want:    2,
		},
		"unordered input": {
			entries: []journal.Entry{entryOn(2, 1), entryOn(0, 1), entryOn(1, 1)},
			want:    3,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Streak(tc.entries, now); got != tc.want {
				t.Fatalf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAverageWordsPerDay(t *testing.T) {
	entries := []journal.Entry{entryOn(4, 100), entryOn(0, 101)}
	if got := AverageWordsPerDay(entries, now); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := AverageWordsPerDay([]journal.Entry{entryOn(0, 77)}, now); got != 77 {
		t.Fatalf("same-day entries divide by 1, got %d", got)
	}

	// 33 hours cross two midnights but make one whole elapsed day.
	first := time.Date(2024, time.March, 8, 23, 0, 0, 0, time.Local)
	at := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local)
	late := []journal.Entry{{ID: "e1", Date: first, WordCount: 100}}
	if got := AverageWordsPerDay(late, at); got != 100 {
		t.Fatalf("expected elapsed-day average 100, got %d", got)
	}
}

func TestWordRecordIsMaxDailyTotal(t *testing.T) {
	entries := []journal.Entry{entryOn(0, 100), entryOn(1, 150), entryOn(1, 100), entryOn(3, 200)}
	if got := WordRecord(entries, time.Local); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	for day, n := range WordsByDay(entries, time.Local) {
		if n > WordRecord(entries, time.Local) {
			t.Fatalf("day %s exceeds record", day)
		}
	}
}

func TestAverageGoalTime(t *testing.T) {
	if got := AverageGoalTime(nil); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
	times := []time.Time{
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local),
		time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local),
	}
	if got := AverageGoalTime(times); got != "08:45" {
		t.Fatalf("expected 08:45, got %q", got)
	}
}

func TestRank(t *testing.T) {
	tests := map[int]string{
		-5:        "Word Dabbler",
		0:         "Word Dabbler",
		500:       "Novice Scribe",
		999:       "Novice Scribe",
		1000:      "Adept Penman",
		1_000_000: "Emissary of Eloquence",
		5_000_000: "Emissary of Eloquence",
	}
	for words, want := range tests {
		if got := Rank(words); got != want {
			t.Fatalf("Rank(%d) = %q, want %q", words, got, want)
		}
	}
}

func TestRankTableIsOrdered(t *testing.T) {
	if len(Ranks) != 51 {
		t.Fatalf("expected 51 ranks, got %d", len(Ranks))
	}
	for i := 1; i < len(Ranks); i++ {
		if Ranks[i].Threshold <= Ranks[i-1].Threshold {
			t.Fatalf("threshold %d not increasing at %q", Ranks[i].Threshold, Ranks[i].Name)
		}
	}
}

func TestNextRank(t *testing.T) {
	if got := NextRank("Novice Scribe"); got != "Adept Penman" {
		t.Fatalf("unexpected next rank %q", got)
	}
	if got := NextRank("Emissary of Eloquence"); got != MaxRankReached {
		t.Fatalf("expected sentinel, got %q", got)
	}
	if got := NextRank("Nobody"); got != MaxRankReached {
		t.Fatalf("expected sentinel for unknown rank, got %q", got)
	}
}

func TestProgressToNextRank(t *testing.T) {
	if got := ProgressToNextRank(750, "Novice Scribe"); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := ProgressToNextRank(100, "Novice Scribe"); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := ProgressToNextRank(5000, "Novice Scribe"); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := ProgressToNextRank(2_000_000, "Emissary of Eloquence"); got != 1 {
		t.Fatalf("expected 1 at the top, got %v", got)
	}
}

func TestWordsUntilNextRank(t *testing.T) {
	if got := WordsUntilNextRank(750, "Novice Scribe"); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	if got := WordsUntilNextRank(1200, "Novice Scribe"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := WordsUntilNextRank(1_000_000, "Emissary of Eloquence"); got != 0 {
		t.Fatalf("expected 0 at the top, got %d", got)
	}
}

func TestComparison(t *testing.T) {
	if got := Comparison(50); !strings.HasPrefix(got, "You're on your way") {
		t.Fatalf("unexpected text for beginners: %q", got)
	}
	if got := Comparison(30020); !strings.Contains(got, "Animal Farm") || !strings.HasPrefix(got, "Amazing!") {
		t.Fatalf("expected close match with Animal Farm, got %q", got)
	}
	got := Comparison(580000)
	if !strings.HasPrefix(got, "You've written 7000 words fewer than 'War and Peace'") {
		t.Fatalf("expected fewer than War and Peace, got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	entries := []journal.Entry{entryOn(0, 400), entryOn(1, 350)}
	s := Summarize(entries, nil, now)
	if s.TotalWords != 750 || s.Rank != "Novice Scribe" || s.NextRank != "Adept Penman" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Streak != 2 || s.TotalPages != 3 || s.AverageGoalTime != "N/A" || s.WordsUntilNextRank != 250 {
		t.Fatalf("unexpected summary %+v", s)
	}
}
