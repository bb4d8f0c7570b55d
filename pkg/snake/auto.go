package snake

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PromptNext walks the user from cmd down to a runnable subcommand, asks for
// its flags and runs it.
func PromptNext(cmd *cobra.Command, args []string) error {
	subcommands := available(cmd)
	if len(subcommands) == 0 {
		return PromptFlags(cmd, args)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Use | bold }}",
		Details: `
--------- Details ----------
{{ .Long }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Commands",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			c := subcommands[index]
			return strings.Contains(squash(c.Name()+c.Short), squash(input))
		},
		Stdin:  stdin(cmd),
		Stdout: stdout(cmd),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}

	next := subcommands[i]
	if next.Runnable() && !next.HasAvailableSubCommands() {
		return PromptFlags(next, args)
	}
	return PromptNext(next, args)
}

func available(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			out = append(out, c)
		}
	}
	return out
}

// PromptFlags asks for flags of cmd until the user picks "Continue...", then
// runs cmd with the collected flags and args.
func PromptFlags(cmd *cobra.Command, args []string) error {
	var fs []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden && f.Name != "help" && f.Name != "interactive" {
			fs = append(fs, f)
		}
	})
	fs = append(fs, &pflag.Flag{
		Name:  "Continue...",
		Value: &continueType{},
	})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }} flags?",
		Active:   "➜ {{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }} {{ .Usage | green | cyan }}{{ end }}",
		Inactive: "  {{ if eq .Value.Type \"continue\" }}{{ .Name | faint | green }}{{ else }}{{ .Name }} {{ .Usage | cyan }}{{ end }}",
		Selected: "{{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }}{{ end }}",
		Details: `
--------- Details ----------
default: {{ .DefValue }}
type: {{ .Value.Type }}
`,
	}

	var flagArgs []string
	index := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     cmd.Name(),
			Items:     fs,
			Templates: templates,
			Size:      10,
			CursorPos: index,
			Searcher: func(input string, i int) bool {
				return strings.Contains(squash(fs[i].Name), squash(input))
			},
			Stdin:  stdin(cmd),
			Stdout: stdout(cmd),
		}

		i, _, err := prompt.Run()
		if err != nil {
			return err
		}
		index = i

		f := fs[i]
		if f.Value.Type() == "continue" {
			return run(cmd, flagArgs, args)
		}
		if !promptable[f.Value.Type()] {
			fmt.Fprintf(cmd.OutOrStdout(), "%q flag type not supported interactively\n", f.Value.Type())
			continue
		}
		arg, err := PromptFlag(cmd, f)
		if err != nil {
			return err
		}
		flagArgs = append(flagArgs, arg)
	}
}

func run(cmd *cobra.Command, flagArgs, args []string) error {
	if err := cmd.ParseFlags(flagArgs); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Running:", cmd.CommandPath(), strings.Join(append(flagArgs, args...), " "))
	if cmd.Args != nil {
		if err := cmd.Args(cmd, args); err != nil {
			return err
		}
	}
	switch {
	case cmd.RunE != nil:
		return cmd.RunE(cmd, args)
	case cmd.Run != nil:
		cmd.Run(cmd, args)
	}
	return nil
}

type continueType struct{}

func (*continueType) String() string {
	return "continue"
}

func (*continueType) Set(string) error {
	return nil
}

func (*continueType) Type() string {
	return "continue"
}
