package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	var (
		goal      int
		resetTime string
		darkMode  bool
		theme     string
		reset     bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences.",
		Example: `
writersblock settings
writersblock settings --goal 500 --reset-time 06:00
writersblock settings --theme journaling --dark-mode
writersblock settings --reset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := settings.Settings{
					Service: svc,
					Reset:   reset,
					JSON:    output.JSON,
				}
				flags := cmd.Flags()
				if flags.Changed("goal") {
					s.Goal = &goal
				}
				if flags.Changed("reset-time") {
					s.ResetTime = &resetTime
				}
				if flags.Changed("dark-mode") {
					s.DarkMode = &darkMode
				}
				if flags.Changed("theme") {
					s.Theme = &theme
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&goal, "goal", 0, "Daily word count goal, between 50 and 1000 in steps of 50.")
	cmd.Flags().StringVar(&resetTime, "reset-time", "", "Time of day the goal resets, HH:MM.")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Use the dark appearance.")
	cmd.Flags().StringVar(&theme, "theme", "", "Prompt theme: all, creative or journaling.")
	cmd.Flags().BoolVar(&reset, "reset", false, "Put the word count goal back to its default.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
