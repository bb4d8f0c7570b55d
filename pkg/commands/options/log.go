package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/timeutil"
)

// RangeOptions selects the entries a command looks at.
type RangeOptions struct {
	Range string
	Last  string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVarP(&o.Range, "range", "r", "all",
		`Date range: all, month, year or FROM..TO, example: --range=2024-01-01..2024-01-31.`)
	cmd.Flags().StringVar(&o.Last, "last", "",
		"Relative window instead of --range, for example 3d, 2w or 1mo.")
}

// GetRange resolves the flags. --last wins over --range.
func (o *RangeOptions) GetRange(now time.Time) (timeutil.DateRange, error) {
	if strings.TrimSpace(o.Last) != "" {
		w, err := timeutil.ParseWindow(o.Last)
		if err != nil {
			return timeutil.DateRange{}, err
		}
		return timeutil.Custom(w.Since(now), now), nil
	}
	return timeutil.ParseRange(o.Range)
}
