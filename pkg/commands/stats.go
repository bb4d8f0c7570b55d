package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Words, streak, averages and rank for a date range.",
		Example: `
writersblock stats
writersblock stats --range month
writersblock stats --last 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r, err := ro.GetRange(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			err = withService(func(svc *app.Service) error {
				s := stats.Stats{
					Service: svc,
					Range:   r,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}

func addRanks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "The writer ranks and the words each one takes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := stats.Ranks{
					Service: svc,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
