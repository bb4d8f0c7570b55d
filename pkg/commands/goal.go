package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	var (
		set     int
		step    int
		history bool
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Today's progress toward the daily word count goal.",
		Example: `
writersblock goal
writersblock goal --set 750
writersblock goal --step 2
writersblock goal --step -1 --history
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := goal.Goal{
					Service: svc,
					Set:     set,
					Step:    step,
					History: history,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&set, "set", 0, "Set the goal, between 50 and 1000 in steps of 50.")
	cmd.Flags().IntVar(&step, "step", 0, "Raise (or lower, when negative) the goal by this many steps of 50.")
	cmd.Flags().BoolVar(&history, "history", false, "List every day and whether the goal was reached.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
