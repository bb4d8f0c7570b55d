package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/runner/block"
)

func addBlock(topLevel *cobra.Command) {
	var (
		clearAll  bool
		authorize bool
	)

	cmd := &cobra.Command{
		Use:   "block [app...]",
		Short: "Choose the apps to block while writing.",
		Long: `Block toggles each named app in the selection and prints the result.
Apps are given by name or bundle identifier.`,
		Example: `
writersblock block
writersblock block Messages Safari
writersblock block --clear
writersblock block --authorize
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, a := range blocklist.Catalog {
				names = append(names, a.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := block.Block{
					Service:   svc,
					Toggle:    args,
					Clear:     clearAll,
					Authorize: authorize,
					JSON:      output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Unselect every app.")
	cmd.Flags().BoolVar(&authorize, "authorize", false, "Ask the platform for screen time access.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
