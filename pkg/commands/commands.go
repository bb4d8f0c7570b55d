package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/snake"
	"tableflip.dev/writersblock/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "writersblock",
		Short: base.Wrap80("Journaling with word goals, streaks and ranks, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return snake.PromptNext(cmd, args)
			}
			return cmd.Help()
		},
	}
	options.InteractiveArgs(cmd, i)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addShow(topLevel)
	addLog(topLevel)
	addFolders(topLevel)
	addTags(topLevel)
	addStats(topLevel)
	addRanks(topLevel)
	addCalendar(topLevel)
	addGoal(topLevel)
	addSettings(topLevel)
	addBlock(topLevel)
	addPrompt(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addRepair(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func addOutputArg(cmd *cobra.Command) {
	base.AddOutputArg(cmd, output)
}

// withService opens the configured store for the duration of fn.
func withService(fn func(svc *app.Service) error) error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	defer p.Close()
	return fn(app.New(p))
}

func folderCompletions(toComplete string) []string {
	var names []string
	_ = withService(func(svc *app.Service) error {
		folders, err := svc.Folders(context.Background())
		if err != nil {
			return err
		}
		for _, f := range folders {
			names = append(names, strconv.Quote(f.Name))
		}
		return nil
	})
	return names
}

func tagCompletions(toComplete string) []string {
	var names []string
	_ = withService(func(svc *app.Service) error {
		tags, err := svc.Tags(context.Background())
		if err != nil {
			return err
		}
		for _, t := range tags {
			names = append(names, t.Name)
		}
		return nil
	})
	return names
}

func registerFolderCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("folder", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return folderCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func registerTagCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("tag", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}
