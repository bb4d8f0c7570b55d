package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/info"
	"tableflip.dev/writersblock/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the journal is stored and what it holds.",
		Example: `
writersblock info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			defer p.Close()
			s := info.Info{
				Config:  cfg,
				Service: app.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
