// Package settings holds the user preferences: daily goal, reset time,
// appearance and prompt theme.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/writersblock/pkg/prompt"
)

const (
	DefaultWordCountGoal = 500
	MinWordCountGoal     = 50
	MaxWordCountGoal     = 1000
	GoalStep             = 50
	DefaultResetTime     = "00:00"
)

// ErrInvalidGoal is returned for goals outside the stepper range.
var ErrInvalidGoal = errors.New("settings: word count goal out of range")

// Settings are flat scalars with no interdependency. Each one is stored under
// its own key.
type Settings struct {
	WordCountGoal int          `json:"wordCountGoal"`
	ResetTime     string       `json:"resetTime"`
	DarkMode      bool         `json:"isDarkMode"`
	PromptTheme   prompt.Theme `json:"promptTheme"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{
		WordCountGoal: DefaultWordCountGoal,
		ResetTime:     DefaultResetTime,
		PromptTheme:   prompt.ThemeAll,
	}
}

// Reset puts the goal back to its default. Other preferences are kept.
func (s *Settings) Reset() {
	s.WordCountGoal = DefaultWordCountGoal
}

// Validate checks every field.
func (s Settings) Validate() error {
	if s.WordCountGoal < MinWordCountGoal || s.WordCountGoal > MaxWordCountGoal {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidGoal, s.WordCountGoal, MinWordCountGoal, MaxWordCountGoal)
	}
	if s.WordCountGoal%GoalStep != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidGoal, s.WordCountGoal, GoalStep)
	}
	if _, _, err := ParseClock(s.ResetTime); err != nil {
		return err
	}
	if _, err := prompt.ParseTheme(string(s.PromptTheme)); err != nil {
		return err
	}
	return nil
}

// StepGoal moves goal by n stepper clicks and clamps it to the allowed range.
func StepGoal(goal, n int) int {
	goal += n * GoalStep
	if goal < MinWordCountGoal {
		return MinWordCountGoal
	}
	if goal > MaxWordCountGoal {
		return MaxWordCountGoal
	}
	return goal
}

// ParseClock parses "HH:MM" in 24 hour time.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("settings: invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("settings: invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("settings: invalid minute in %q", s)
	}
	return hour, minute, nil
}
