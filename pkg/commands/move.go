package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	var create bool

	cmd := &cobra.Command{
		Use:     "move <id> <folder>",
		Aliases: []string{"mv"},
		Short:   "Move an entry to another folder.",
		Example: `
writersblock move 1a2b3c4d Dreams
writersblock move 1a2b3c4d "Travel 2024" --create
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return folderCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := move.Move{
					Service: svc,
					ID:      args[0],
					To:      args[1],
					Create:  create,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Create the folder when it does not exist.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
