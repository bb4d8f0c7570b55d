package options

import (
	"testing"
	"time"

	"tableflip.dev/writersblock/pkg/timeutil"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2024, time.March, 10, 20, 15, 0, 0, time.Local)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-3-1", time.Date(2024, time.March, 1, 20, 15, 0, 0, time.Local)},
		{"2024-3-1 07:30", time.Date(2024, time.March, 1, 7, 30, 0, 0, time.Local)},
		{"3/9", time.Date(2024, time.March, 9, 20, 15, 0, 0, time.Local)},
		{"12/24", time.Date(2023, time.December, 24, 20, 15, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		o := OnOptions{OnString: tt.in}
		got, err := o.GetOn(now)
		if err != nil {
			t.Fatalf("GetOn(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("GetOn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	empty := OnOptions{}
	if got, err := empty.GetOn(now); err != nil || got != nil {
		t.Fatalf("expected nil for unset flag, got %v, %v", got, err)
	}
	bad := OnOptions{OnString: "yesterday"}
	if _, err := bad.GetOn(now); err == nil {
		t.Fatalf("expected error for %q", bad.OnString)
	}
}

func TestGetRangeLastWins(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	o := RangeOptions{Range: "year", Last: "3d"}
	r, err := o.GetRange(now)
	if err != nil {
		t.Fatalf("GetRange: %v", err)
	}
	if r.Kind != timeutil.RangeCustom {
		t.Fatalf("expected custom range, got %s", r.Kind)
	}
	if r.Contains(now.AddDate(0, 0, -4), now) {
		t.Fatalf("four days ago should be outside 3d")
	}
	if !r.Contains(now.AddDate(0, 0, -2), now) {
		t.Fatalf("two days ago should be inside 3d")
	}
}
