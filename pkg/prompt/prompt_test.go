package prompt

import (
	"math/rand"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := map[string]Theme{
		"":                         ThemeAll,
		"all":                      ThemeAll,
		"Creative":                 ThemeCreative,
		"journaling prompts":       ThemeJournaling,
		"Creative Writing Prompts": ThemeCreative,
	}
	for in, want := range tests {
		got, err := ParseTheme(in)
		if err != nil {
			t.Fatalf("ParseTheme(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTheme(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseTheme("horror"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestRandomStaysInTheme(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	allowed := make(map[string]bool)
	for _, p := range ForTheme(ThemeJournaling) {
		allowed[p] = true
	}
	for i := 0; i < 50; i++ {
		if p := Random(ThemeJournaling, r); !allowed[p] {
			t.Fatalf("prompt %q not in journaling theme", p)
		}
	}
}

func TestAllThemeCoversEveryPrompt(t *testing.T) {
	if got, want := len(ForTheme(ThemeAll)), len(creative)+len(journaling); got != want {
		t.Fatalf("expected %d prompts, got %d", want, got)
	}
}
