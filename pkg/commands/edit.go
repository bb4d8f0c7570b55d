package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	on := &options.OnOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, text, notes, tags or date of an entry.",
		Example: `
writersblock edit 1a2b3c4d --title "Morning pages"
writersblock edit 1a2b3c4d --tag dreams,sleep
writersblock edit 1a2b3c4d --editor
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			when, err := on.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			err = withService(func(svc *app.Service) error {
				ctx := context.Background()
				s := edit.Edit{
					Service: svc,
					ID:      args[0],
					On:      when,
					JSON:    output.JSON,
				}
				flags := cmd.Flags()
				if flags.Changed("title") {
					s.Title = &eo.Title
				}
				if flags.Changed("notes") {
					s.Notes = &eo.Notes
				}
				if flags.Changed("tag") {
					s.Tags = append([]string{}, eo.Tags...)
				}
				switch {
				case flags.Changed("text"):
					s.Text = &text
				case eo.File != "":
					body, err := entryText(cmd, eo, nil)
					if err != nil {
						return err
					}
					s.Text = &body
				case eo.Editor:
					current, _, err := svc.Entry(ctx, args[0])
					if err != nil {
						return err
					}
					body, err := editText(current.Text)
					if err != nil {
						return err
					}
					s.Text = &body
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	cmd.Flags().StringVar(&text, "text", "", "Replace the entry text.")
	registerTagCompletion(cmd)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
