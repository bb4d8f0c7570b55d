package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/folders"
)

func addFolders(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "List folders with entry and word counts.",
		Example: `
writersblock folders
writersblock folders create Dreams
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := folders.List{
					Service: svc,
					ShowID:  io.ShowID,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	addOutputArg(cmd)

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := folders.Create{
					Service: svc,
					Name:    strings.Join(args, " "),
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	addOutputArg(create)
	cmd.AddCommand(create)

	topLevel.AddCommand(cmd)
}
