package dashboard

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/store"
	"tableflip.dev/writersblock/pkg/timeutil"
	"tableflip.dev/writersblock/pkg/tui/theme"
)

var fixedNow = time.Date(2024, time.March, 10, 20, 0, 0, 0, time.Local)

func newTestModel(t *testing.T) (*Model, *app.Service) {
	t.Helper()
	svc := app.New(store.NewMemory())
	svc.Now = func() time.Time { return fixedNow }
	th := theme.Plain()
	m := New(context.Background(), svc, Options{Theme: &th, Rand: rand.New(rand.NewSource(1))})
	t.Cleanup(m.Close)
	return m, svc
}

func press(m *Model, text string) tea.Cmd {
	r := []rune(text)[0]
	_, cmd := m.Update(tea.KeyPressMsg{Text: text, Code: r})
	return cmd
}

func TestMonthNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	start := calendar.MonthOf(fixedNow)

	press(m, "l")
	if m.month != start.Next() {
		t.Fatalf("expected %s, got %s", start.Next(), m.month)
	}
	press(m, "h")
	press(m, "h")
	if m.month != start.Prev() {
		t.Fatalf("expected %s, got %s", start.Prev(), m.month)
	}
	press(m, "t")
	if m.month != start {
		t.Fatalf("expected today's month %s, got %s", start, m.month)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewShowsStatsAndCalendar(t *testing.T) {
	ctx := context.Background()
	m, svc := newTestModel(t)
	if _, err := svc.CreateEntry(ctx, app.NewEntry{Text: "one two three four five"}); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	if !strings.Contains(m.View(), "Loading") {
		t.Fatalf("expected loading view before data arrives")
	}

	m.Update(m.load()())
	view := m.View()
	for _, want := range []string{"March 2024", "Total words", "5", "Su Mo Tu We Th Fr Sa", "Prompt:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestQuickWrite(t *testing.T) {
	ctx := context.Background()
	m, svc := newTestModel(t)
	m.Update(m.load()())

	press(m, "n")
	if m.mode != modeWrite {
		t.Fatalf("expected write mode")
	}
	m.input.SetValue("a quick note")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after submit")
	}
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	m.Update(cmd())

	entries, err := svc.Entries(ctx, timeutil.AllTime())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "a quick note" {
		t.Fatalf("expected the quick note to be saved, got %+v", entries)
	}
	if !strings.Contains(m.status, "Saved 3 words") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestWriteCancel(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "n")
	m.input.SetValue("never mind")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeNormal || m.input.Value() != "" {
		t.Fatalf("expected cancelled input, mode=%v value=%q", m.mode, m.input.Value())
	}
}

func TestProgressBar(t *testing.T) {
	st := theme.Plain().Stats
	bar := progressBar(0.5, st)
	if strings.Count(bar, "█") != barWidth/2 {
		t.Fatalf("expected half full bar, got %q", bar)
	}
	if !strings.HasSuffix(bar, " 50%") {
		t.Fatalf("expected percentage suffix, got %q", bar)
	}
	if strings.Count(progressBar(2, st), "░") != 0 {
		t.Fatalf("expected clamped full bar")
	}
}
