// Package prompt hands out writing prompts grouped by theme.
package prompt

import (
	"fmt"
	"math/rand"
	"strings"
)

// Theme selects which prompts are eligible.
type Theme string

const (
	ThemeAll        Theme = "All Themes"
	ThemeCreative   Theme = "Creative Writing Prompts"
	ThemeJournaling Theme = "Journaling Prompts"
)

// Fallback is returned when a theme has no prompts.
const Fallback = "Write about your perfect day."

// Themes lists the selectable themes in display order.
var Themes = []Theme{ThemeAll, ThemeCreative, ThemeJournaling}

var creative = []string{
	"Write about a character who discovers a hidden door in their house.",
	"Describe a world where everyone has a superpower, except for one person.",
	"Tell a story that takes place entirely in an elevator.",
	"Write about a day in the life of a sentient cloud.",
	"Describe a future where books are forbidden.",
	"Write about a character who wakes up one day speaking a language they don't know.",
	"Tell a story about the last person on Earth.",
	"Describe an encounter with a mythical creature in a modern city.",
	"Write about a character who can taste colors.",
	"Tell a story that begins and ends with the same sentence.",
}

var journaling = []string{
	"What is one thing you want to remember about today?",
	"Describe a small moment this week that made you smile.",
	"What is taking up most of your attention right now, and why?",
	"Write a letter to yourself one year from now.",
	"What did you learn recently that changed your mind about something?",
	"Which habit would you like to start, and what is stopping you?",
}

// ParseTheme matches a theme by name, case-insensitively. Short forms
// "all", "creative" and "journaling" are accepted too.
func ParseTheme(s string) (Theme, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ThemeAll, nil
	}
	for _, t := range Themes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	switch strings.ToLower(s) {
	case "all":
		return ThemeAll, nil
	case "creative":
		return ThemeCreative, nil
	case "journaling", "journal":
		return ThemeJournaling, nil
	}
	return "", fmt.Errorf("prompt: unknown theme %q", s)
}

// ForTheme returns the prompts for the theme. Unknown themes get all prompts.
func ForTheme(theme Theme) []string {
	switch theme {
	case ThemeCreative:
		return append([]string(nil), creative...)
	case ThemeJournaling:
		return append([]string(nil), journaling...)
	default:
		out := make([]string, 0, len(creative)+len(journaling))
		out = append(out, creative...)
		return append(out, journaling...)
	}
}

// Random picks one prompt for the theme. A nil r uses the global source.
func Random(theme Theme, r *rand.Rand) string {
	prompts := ForTheme(theme)
	if len(prompts) == 0 {
		return Fallback
	}
	if r == nil {
		return prompts[rand.Intn(len(prompts))]
	}
	return prompts[r.Intn(len(prompts))]
}
