package calendar

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/writersblock/pkg/journal"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestGridForWednesdayStartThirtyDays(t *testing.T) {
	// November 2023 starts on a Wednesday.
	grid := GenerateMonthGrid(2023, time.November, NewDateSet(nil, time.Local), day(2023, time.December, 1, 12))

	if len(grid) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(grid))
	}
	leading := 0
	for _, c := range grid {
		if c.Day != 0 {
			break
		}
		leading++
	}
	if leading != 3 {
		t.Fatalf("expected 3 leading placeholders, got %d", leading)
	}
	populated := 0
	for i, c := range grid {
		if c.Day == 0 {
			if c.Status != Empty {
				t.Fatalf("placeholder %d has status %v", i, c.Status)
			}
			continue
		}
		populated++
		if c.Day != i-2 {
			t.Fatalf("cell %d holds day %d", i, c.Day)
		}
	}
	if populated != 30 {
		t.Fatalf("expected 30 days, got %d", populated)
	}
}

func TestClassify(t *testing.T) {
	entries := []journal.Entry{
		{Date: day(2024, time.March, 5, 9)},
		{Date: day(2024, time.March, 7, 22)},
		{Date: day(2024, time.March, 20, 8)}, // future dated
	}
	dates := NewDateSet(entries, time.Local)
	today := day(2024, time.March, 10, 15)
	grid := GenerateMonthGrid(2024, time.March, dates, today)

	byDay := make(map[int]Status)
	for _, c := range grid {
		if c.Day != 0 {
			byDay[c.Day] = c.Status
		}
	}
	want := map[int]Status{
		1:  BeforeApp,
		4:  BeforeApp,
		5:  Completed,
		6:  Missed,
		7:  Completed,
		10: Missed,
		11: Future,
		20: Future,
	}
	for d, s := range want {
		if byDay[d] != s {
			t.Fatalf("day %d: expected %v, got %v", d, s, byDay[d])
		}
	}
}

func TestGridWithoutEntriesHasNoBeforeApp(t *testing.T) {
	grid := GenerateMonthGrid(2024, time.March, NewDateSet(nil, time.Local), day(2024, time.March, 10, 0))
	for _, c := range grid {
		if c.Status == BeforeApp {
			t.Fatalf("day %d marked beforeApp without entries", c.Day)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	m := Month{Year: 2023, Month: time.December}
	if got := m.Next(); got != (Month{Year: 2024, Month: time.January}) {
		t.Fatalf("unexpected next %v", got)
	}
	if got := m.Next().Prev(); got != m {
		t.Fatalf("prev(next(m)) = %v", got)
	}
	if got := (Month{Year: 2024, Month: time.January}).Prev(); got.Year != 2023 || got.Month != time.December {
		t.Fatalf("unexpected prev %v", got)
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"2024-02", "February 2024"} {
		m, err := ParseMonth(in)
		if err != nil || m.Year != 2024 || m.Month != time.February {
			t.Fatalf("ParseMonth(%q) = %v, %v", in, m, err)
		}
	}
	if _, err := ParseMonth("soon"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRenderSkipsBlankWeeks(t *testing.T) {
	m := Month{Year: 2023, Month: time.November}
	today := day(2023, time.November, 15, 0)
	out := stripANSIString(Render(m, m.Grid(NewDateSet(nil, time.Local), today), today, PlainOptions()))
	lines := strings.Split(out, "\n")
	// title, header and five weeks.
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != strings.Repeat(" ", 3)+"November 2023" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 10)+"1") {
		t.Fatalf("first week misaligned: %q", lines[2])
	}
}

func TestCellJSONOmitsPlaceholderDate(t *testing.T) {
	grid := GenerateMonthGrid(2023, time.November, NewDateSet(nil, time.Local), day(2023, time.December, 1, 12))

	blank, err := json.Marshal(grid[0])
	if err != nil {
		t.Fatalf("marshal placeholder: %v", err)
	}
	if got := string(blank); got != `{"day":0,"status":"empty"}` {
		t.Fatalf("unexpected placeholder json %s", got)
	}

	first, err := json.Marshal(grid[3])
	if err != nil {
		t.Fatalf("marshal day: %v", err)
	}
	if got := string(first); got != `{"day":1,"date":"2023-11-01","status":"missed"}` {
		t.Fatalf("unexpected day json %s", got)
	}
}
