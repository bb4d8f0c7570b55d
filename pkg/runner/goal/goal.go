// Package goal shows and changes the daily word count goal.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	dailygoal "tableflip.dev/writersblock/pkg/goal"
	"tableflip.dev/writersblock/pkg/printers"
	"tableflip.dev/writersblock/pkg/settings"
)

// Goal prints today's progress and the goal history. Set or Step change the
// goal first.
type Goal struct {
	Service *app.Service
	// Set replaces the goal when positive.
	Set int
	// Step moves the goal by this many increments of settings.GoalStep.
	Step    int
	History bool
	JSON    bool
}

type goalJSON struct {
	Goal    int             `json:"goal"`
	Today   int             `json:"wordsToday"`
	Reached bool            `json:"reached"`
	Days    []dailygoal.Day `json:"history,omitempty"`
}

func (g *Goal) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not read goal, no service")
	}
	prefs, err := g.Service.Settings(ctx)
	if err != nil {
		return err
	}
	if g.Set > 0 || g.Step != 0 {
		if g.Set > 0 {
			prefs.WordCountGoal = g.Set
		}
		if g.Step != 0 {
			prefs.WordCountGoal = settings.StepGoal(prefs.WordCountGoal, g.Step)
		}
		if err := g.Service.SaveSettings(ctx, prefs); err != nil {
			return err
		}
		// Re-check so a lowered goal counts words already written today.
		if _, err := g.Service.CheckGoal(ctx); err != nil {
			return err
		}
	}

	words, err := g.Service.WordsToday(ctx)
	if err != nil {
		return err
	}
	days, err := g.Service.GoalDays(ctx)
	if err != nil {
		return err
	}
	reached := len(days) > 0 && days[0].Achieved

	if g.JSON {
		out := goalJSON{Goal: prefs.WordCountGoal, Today: words, Reached: reached}
		if g.History {
			out.Days = days
		}
		return printers.JSON(nil, out)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	line := fmt.Sprintf("%d / %d words today", words, prefs.WordCountGoal)
	if reached {
		_, _ = color.New(color.FgGreen, color.Bold).Fprintln(color.Output, line+" ✓")
	} else {
		_, _ = fmt.Fprintln(color.Output, line)
	}
	pp.NewLine()
	if g.History {
		pp.Title("Goal history")
		pp.GoalDays(days)
	}
	return nil
}
