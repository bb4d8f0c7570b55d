package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	fo := &options.FolderOptions{}
	io := &options.IDOptions{}
	var tag string

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"ls"},
		Short:   "List entries, newest first.",
		Example: `
writersblock log
writersblock log --range month
writersblock log --last 1w --folder Dreams
writersblock log --range 2024-01-01..2024-01-31 --tag travel
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			r, err := ro.GetRange(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			err = withService(func(svc *app.Service) error {
				s := log.Log{
					Service: svc,
					Range:   r,
					Folder:  fo.Folder,
					Tag:     tag,
					ShowID:  io.ShowID,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)
	options.AddFolderArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&tag, "tag", "", "Only entries carrying this tag name or id.")
	registerFolderCompletion(cmd)
	registerTagCompletion(cmd)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
