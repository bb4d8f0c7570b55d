package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in    string
		want  Window
		label string
	}{
		{in: "3d", want: Window{Days: 3}, label: "3d"},
		{in: "1w2d", want: Window{Days: 9}, label: "1w2d"},
		{in: "14 days", want: Window{Days: 14}, label: "2w"},
		{in: "1Y2MO", want: Window{Years: 1, Months: 2}, label: "1y2mo"},
	}
	for _, tc := range tests {
		got, err := ParseWindow(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.in, tc.want, got)
		}
		if got.String() != tc.label {
			t.Fatalf("%q: expected label %s, got %s", tc.in, tc.label, got.String())
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3h", "0d", "2w!"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2024, time.March, 31, 21, 15, 0, 0, time.UTC)

	if got, want := (Window{Days: 1}).Since(now), time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// AddDate normalizes February 31 to March 2.
	if got, want := (Window{Months: 1}).Since(now), time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
