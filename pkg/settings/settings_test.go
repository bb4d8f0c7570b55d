package settings

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestValidateGoal(t *testing.T) {
	for _, goal := range []int{0, 49, 75, 1050, 3000} {
		s := Default()
		s.WordCountGoal = goal
		if err := s.Validate(); !errors.Is(err, ErrInvalidGoal) {
			t.Fatalf("goal %d: expected ErrInvalidGoal, got %v", goal, err)
		}
	}
	for _, goal := range []int{50, 500, 1000} {
		s := Default()
		s.WordCountGoal = goal
		if err := s.Validate(); err != nil {
			t.Fatalf("goal %d: %v", goal, err)
		}
	}
}

func TestStepGoalClamps(t *testing.T) {
	tests := []struct {
		goal, n, want int
	}{
		{500, 1, 550},
		{500, -2, 400},
		{50, -1, 50},
		{1000, 3, 1000},
	}
	for _, tc := range tests {
		if got := StepGoal(tc.goal, tc.n); got != tc.want {
			t.Fatalf("StepGoal(%d,%d) = %d, want %d", tc.goal, tc.n, got, tc.want)
		}
	}
}

func TestResetKeepsPreferences(t *testing.T) {
	s := Default()
	s.WordCountGoal = 900
	s.DarkMode = true
	s.Reset()
	if s.WordCountGoal != DefaultWordCountGoal || !s.DarkMode {
		t.Fatalf("unexpected settings after reset: %+v", s)
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:30")
	if err != nil || h != 7 || m != 30 {
		t.Fatalf("ParseClock = %d, %d, %v", h, m, err)
	}
	for _, bad := range []string{"7:30", "24:00", "12:60", "noon", ""} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
