package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/runner/tags"
	"tableflip.dev/writersblock/pkg/snake"
)

func addTags(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "List the tag palette.",
		Example: `
writersblock tags
writersblock tags create travel --color "#4A90D9"
writersblock tags update travel --name trips
writersblock tags delete trips
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := tags.List{
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

	cmd.AddCommand(tagCreateCmd(), tagUpdateCmd(), tagDeleteCmd())
	topLevel.AddCommand(cmd)
}

func tagCreateCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Add a tag to the palette.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := tags.Create{Service: svc, Name: args[0], Color: color}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVar(&color, "color", journal.DefaultTagColor, "Hex color of the tag.")
	addOutputArg(cmd)
	return cmd
}

func tagUpdateCmd() *cobra.Command {
	var name, color string
	cmd := &cobra.Command{
		Use:   "update <tag>",
		Short: "Rename or recolor a tag.",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withService(func(svc *app.Service) error {
				s := tags.Update{Service: svc, Ref: args[0], Name: name, Color: color}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name of the tag.")
	cmd.Flags().StringVar(&color, "color", "", "New hex color of the tag.")
	addOutputArg(cmd)
	return cmd
}

func tagDeleteCmd() *cobra.Command {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "delete <tag>",
		Short: "Remove a tag from the palette and from every entry.",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !co.Yes {
				ok, err := snake.Confirm(cmd, "Delete tag "+args[0])
				if err != nil || !ok {
					return output.HandleError(err)
				}
			}
			err := withService(func(svc *app.Service) error {
				s := tags.Delete{Service: svc, Ref: args[0]}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}
	options.AddConfirmArgs(cmd, co)
	addOutputArg(cmd)
	return cmd
}
