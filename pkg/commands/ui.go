package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"dashboard"},
		Short:   "Open the full-screen writing dashboard.",
		Example: `
writersblock ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withService(func(svc *app.Service) error {
				s := ui.UI{Service: svc}
				return s.Do(context.Background())
			})
		},
	}

	topLevel.AddCommand(cmd)
}
