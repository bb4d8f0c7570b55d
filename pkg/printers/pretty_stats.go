package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/writersblock/pkg/analytics"
	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/settings"
)

// Report prints the dashboard statistics.
func (pp *PrettyPrint) Report(r app.Report) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)

	pp.Title(fmt.Sprintf("Stats · %s", r.Range))
	s := r.Summary

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Total words"), s.TotalWords)
	tbl.AddRow(bold.Sprint("Pages"), s.TotalPages)
	tbl.AddRow(bold.Sprint("Entries"), s.Entries)
	tbl.AddRow(bold.Sprint("Streak"), days(s.Streak))
	tbl.AddRow(bold.Sprint("Avg words/day"), s.AverageWordsPerDay)
	tbl.AddRow(bold.Sprint("Word record"), s.WordRecord)
	tbl.AddRow(bold.Sprint("Avg goal time"), s.AverageGoalTime)

	today := fmt.Sprintf("%d / %d", r.Today, r.Goal)
	if r.Today >= r.Goal {
		today = green.Sprint(today + " ✓")
	}
	tbl.AddRow(bold.Sprint("Today"), today)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	_, _ = fmt.Fprintf(pp.out(), "%s %s\n", bold.Sprint("Rank:"), color.New(color.FgMagenta, color.Bold).Sprint(s.Rank))
	if s.NextRank == analytics.MaxRankReached {
		_, _ = faint.Fprintln(pp.out(), analytics.MaxRankReached)
	} else {
		_, _ = faint.Fprintf(pp.out(), "%.0f%% to %s, %d words to go\n", s.Progress*100, s.NextRank, s.WordsUntilNextRank)
	}
	pp.NewLine()
	_, _ = color.New(color.Italic).Fprintln(pp.out(), wordwrap.String(s.Comparison, pp.width()))
	pp.NewLine()
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Ranks prints the rank ladder and marks the one held at total.
func (pp *PrettyPrint) Ranks(total int) {
	bold := color.New(color.Bold)
	held := color.New(color.FgMagenta, color.Bold)
	faint := color.New(color.Faint)
	current := analytics.TierFor(total)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Words"), bold.Sprint("Rank"))
	for _, tier := range analytics.Ranks {
		switch {
		case tier == current:
			tbl.AddRow(held.Sprint("➜"), held.Sprint(tier.Threshold), held.Sprint(tier.Name))
		case tier.Threshold < total:
			tbl.AddRow("", tier.Threshold, tier.Name)
		default:
			tbl.AddRow("", faint.Sprint(tier.Threshold), faint.Sprint(tier.Name))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Settings prints the preferences.
func (pp *PrettyPrint) Settings(s settings.Settings) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Word count goal"), s.WordCountGoal)
	tbl.AddRow(bold.Sprint("Reset time"), s.ResetTime)
	tbl.AddRow(bold.Sprint("Dark mode"), s.DarkMode)
	tbl.AddRow(bold.Sprint("Prompt theme"), s.PromptTheme)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Blocklist prints the catalog with the selected apps checked.
func (pp *PrettyPrint) Blocklist(set blocklist.Set, authorized bool) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("App"), bold.Sprint("Bundle"))
	for _, a := range blocklist.Catalog {
		mark := " "
		if set[a.BundleID] {
			mark = green.Sprint("✓")
		}
		tbl.AddRow(mark, a.Name, faint.Sprint(a.BundleID))
	}
	for _, id := range set.IDs() {
		if _, ok := blocklist.Lookup(id); !ok {
			tbl.AddRow(green.Sprint("✓"), id, faint.Sprint(id))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
	if authorized {
		_, _ = green.Fprintln(pp.out(), "Screen time access granted.")
	} else {
		_, _ = faint.Fprintln(pp.out(), "Screen time access not granted.")
	}
	pp.NewLine()
}
