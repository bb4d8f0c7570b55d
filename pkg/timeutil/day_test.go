package timeutil

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	a := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
	tests := []struct {
		b    time.Time
		want int
	}{
		{time.Date(2024, 3, 1, 0, 1, 0, 0, loc), 0},
		{time.Date(2024, 3, 2, 0, 1, 0, 0, loc), 1},
		{time.Date(2024, 2, 28, 12, 0, 0, 0, loc), -2},
		{time.Date(2025, 3, 1, 12, 0, 0, 0, loc), 365},
	}
	for _, tc := range tests {
		if got := DaysBetween(a, tc.b); got != tc.want {
			t.Fatalf("DaysBetween(%v, %v) = %d, want %d", a, tc.b, got, tc.want)
		}
	}
}

func TestStartOfDayAndSameDay(t *testing.T) {
	ts := time.Date(2024, 9, 17, 18, 45, 12, 5, time.Local)
	start := StartOfDay(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 17 {
		t.Fatalf("unexpected start of day %v", start)
	}
	if !SameDay(start, ts) {
		t.Fatalf("expected same day")
	}
	if SameDay(start, AddDays(ts, 1)) {
		t.Fatalf("expected different days")
	}
}

func TestDaysIn(t *testing.T) {
	if DaysIn(2024, time.February) != 29 {
		t.Fatalf("leap february")
	}
	if DaysIn(2023, time.February) != 28 {
		t.Fatalf("february")
	}
	if DaysIn(2024, time.December) != 31 {
		t.Fatalf("december")
	}
}

func TestParseRange(t *testing.T) {
	now := time.Date(2024, 9, 17, 12, 0, 0, 0, time.Local)

	r, err := ParseRange("")
	if err != nil || r.Kind != RangeAllTime {
		t.Fatalf("default range = %+v, %v", r, err)
	}

	r, err = ParseRange("month")
	if err != nil {
		t.Fatalf("ParseRange(month): %v", err)
	}
	if !r.Contains(now.AddDate(0, 0, -10), now) || r.Contains(now.AddDate(0, -2, 0), now) {
		t.Fatalf("last month range misclassified")
	}

	r, err = ParseRange("2024-09-01..2024-09-10")
	if err != nil {
		t.Fatalf("ParseRange(custom): %v", err)
	}
	if !r.Contains(time.Date(2024, 9, 10, 23, 0, 0, 0, time.Local), now) {
		t.Fatalf("custom range end should be inclusive")
	}
	if r.Contains(time.Date(2024, 9, 11, 0, 0, 0, 0, time.Local), now) {
		t.Fatalf("custom range should stop after end day")
	}

	if _, err := ParseRange("sometime"); err == nil {
		t.Fatalf("expected error")
	}
}
