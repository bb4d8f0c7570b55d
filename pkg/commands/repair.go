package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/repair"
)

func addRepair(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Move unreadable journal data aside so the journal loads again.",
		Long: `Repair renames records that can no longer be decoded to a ".corrupt-<time>"
key and clears the original. The rest of the journal is left as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := repair.Repair{Service: svc}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
