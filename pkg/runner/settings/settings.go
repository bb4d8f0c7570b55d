// Package settings shows and edits preferences.
package settings

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
	"tableflip.dev/writersblock/pkg/prompt"
	"tableflip.dev/writersblock/pkg/settings"
)

// Settings applies the non-nil changes, then prints the result.
type Settings struct {
	Service   *app.Service
	Goal      *int
	ResetTime *string
	DarkMode  *bool
	Theme     *string
	Reset     bool
	JSON      bool
}

func (s *Settings) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not read settings, no service")
	}
	prefs, err := s.Service.Settings(ctx)
	if err != nil {
		return err
	}

	changed := s.Reset
	if s.Reset {
		prefs.Reset()
	}
	if s.Goal != nil {
		prefs.WordCountGoal = *s.Goal
		changed = true
	}
	if s.ResetTime != nil {
		if _, _, err := settings.ParseClock(*s.ResetTime); err != nil {
			return err
		}
		prefs.ResetTime = *s.ResetTime
		changed = true
	}
	if s.DarkMode != nil {
		prefs.DarkMode = *s.DarkMode
		changed = true
	}
	if s.Theme != nil {
		theme, err := prompt.ParseTheme(*s.Theme)
		if err != nil {
			return err
		}
		prefs.PromptTheme = theme
		changed = true
	}
	if changed {
		if err := s.Service.SaveSettings(ctx, prefs); err != nil {
			return err
		}
	}

	if s.JSON {
		return printers.JSON(nil, prefs)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	if changed {
		_, _ = color.New(color.Faint).Fprintln(color.Output, "Settings saved.")
		pp.NewLine()
	}
	pp.Settings(prefs)
	return nil
}
