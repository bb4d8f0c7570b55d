package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	var (
		width int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"cat"},
		Short:   "Print an entry.",
		Example: `
writersblock show 1a2b3c4d
writersblock show 1a2b3c4d --raw
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := show.Show{
					Service: svc,
					ID:      args[0],
					Width:   width,
					Raw:     raw,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap text at this many columns.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print without markdown styling.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
