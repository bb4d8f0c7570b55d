package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/runner/remove"
	"tableflip.dev/writersblock/pkg/snake"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry.",
		Example: `
writersblock delete 1a2b3c4d
writersblock delete 1a2b3c4d -y
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := remove.Remove{
					Service: svc,
					ID:      args[0],
				}
				if !co.Yes {
					s.Confirm = func(e journal.Entry) (bool, error) {
						return snake.Confirm(cmd, fmt.Sprintf("Delete %q (%d words)", e.Title, e.WordCount))
					}
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
