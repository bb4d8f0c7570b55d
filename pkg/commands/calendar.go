package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	runner "tableflip.dev/writersblock/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	var months int

	cmd := &cobra.Command{
		Use:     "calendar [month]",
		Aliases: []string{"cal"},
		Short:   "Show which days you wrote on.",
		Example: `
writersblock calendar
writersblock calendar 2024-02
writersblock calendar "March 2024" --months 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m := calendar.MonthOf(time.Now())
			if len(args) > 0 {
				var err error
				if m, err = calendar.ParseMonth(strings.Join(args, " ")); err != nil {
					return output.HandleError(err)
				}
			}
			err := withService(func(svc *app.Service) error {
				s := runner.Calendar{
					Service: svc,
					Month:   m,
					Months:  months,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 1, "Number of months to show, ending at the given month.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
