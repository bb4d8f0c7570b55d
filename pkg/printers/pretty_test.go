package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/analytics"
	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/journal"
)

func init() {
	color.NoColor = true
}

func TestEntriesShowsTitleWordsAndTags(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	tag := journal.Tag{ID: "t1", Name: "morning", Color: journal.DefaultTagColor}
	e := *journal.NewEntry("Pages", "one two three\nsecond line", time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local), []string{"t1"})
	pp.Entries([]journal.Tag{tag}, e)

	out := buf.String()
	for _, want := range []string{"Mar 1, 2024", "Pages", "3 words", "#morning", "one two three"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "second line") {
		t.Fatalf("expected only the first line of the body:\n%s", out)
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries(nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestReportAtMaxRank(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Report(app.Report{
		Range: "all time",
		Goal:  500,
		Today: 600,
		Summary: analytics.Summary{
			TotalWords: 1000000,
			Rank:       analytics.Rank(1000000),
			NextRank:   analytics.MaxRankReached,
			Progress:   1,
			Comparison: analytics.Comparison(1000000),
		},
	})
	out := buf.String()
	if !strings.Contains(out, analytics.MaxRankReached) {
		t.Fatalf("expected max rank marker:\n%s", out)
	}
	if !strings.Contains(out, "600 / 500 ✓") {
		t.Fatalf("expected goal check:\n%s", out)
	}
}

func TestRanksMarksCurrent(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Ranks(500)
	current := analytics.Rank(500)
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "➜") {
			if !strings.Contains(line, current) {
				t.Fatalf("expected %q on the marked line, got %q", current, line)
			}
			return
		}
	}
	t.Fatalf("no rank marked:\n%s", buf.String())
}

func TestBlocklistListsUnknownIDs(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Blocklist(blocklist.NewSet("com.example.custom", "com.reddit.Reddit"), false)
	out := buf.String()
	if !strings.Contains(out, "com.example.custom") {
		t.Fatalf("expected custom id:\n%s", out)
	}
	if !strings.Contains(out, "not granted") {
		t.Fatalf("expected authorization line:\n%s", out)
	}
}
