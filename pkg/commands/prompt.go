package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/prompt"
)

func addPrompt(topLevel *cobra.Command) {
	var (
		theme string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Get a writing prompt.",
		Example: `
writersblock prompt
writersblock prompt --theme creative
writersblock prompt --theme journaling --all
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := prompt.Prompt{
					Service: svc,
					Theme:   theme,
					All:     all,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Prompt theme: all, creative or journaling. Defaults to the configured theme.")
	cmd.Flags().BoolVar(&all, "all", false, "List every prompt of the theme.")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "creative", "journaling"}, cobra.ShellCompDirectiveNoFileComp
	})
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
