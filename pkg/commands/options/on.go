package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutISOTime  = "2006-1-2 15:04"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date the entry was written, example: --on="2024-2-28", --on="2024-2-28 21:30" or --on="2/28".`)
}

// GetOn parses --on relative to now. A nil time means the flag was not set.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	loc := now.Location()
	if t, err := time.ParseInLocation(layoutISOTime, o.OnString, loc); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, loc)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, loc)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// A month/day later than today was written last year.
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	// Keep the time of day so entries on the same date stay ordered.
	t = time.Date(t.Year(), t.Month(), t.Day(), now.Hour(), now.Minute(), now.Second(), 0, loc)
	return &t, nil
}
