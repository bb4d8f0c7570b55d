package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/write"
	"tableflip.dev/writersblock/pkg/snake"
)

func addWrite(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	fo := &options.FolderOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "write [text]",
		Aliases: []string{"w", "new"},
		Short:   "Write a new journal entry.",
		Example: `
writersblock write "Walked to the lighthouse before breakfast."
writersblock write --title "Dream" --folder Dreams --tag sleep "I could fly."
writersblock write --on 2/28 --file draft.md
writersblock write --editor
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text, err := entryText(cmd, eo, args)
			if err != nil {
				return output.HandleError(err)
			}
			when, err := on.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			err = withService(func(svc *app.Service) error {
				s := write.Write{
					Service: svc,
					Title:   eo.Title,
					Text:    text,
					Folder:  fo.Folder,
					Tags:    eo.Tags,
					Notes:   eo.Notes,
					On:      when,
					JSON:    output.JSON,
				}
				return s.Do(context.Background())
			})
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddFolderArgs(cmd, fo)
	options.AddOnArgs(cmd, on)
	registerFolderCompletion(cmd)
	registerTagCompletion(cmd)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}

// entryText collects the body from args, --file, --editor or a prompt, in
// that order.
func entryText(cmd *cobra.Command, eo *options.EntryOptions, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	switch {
	case eo.File == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	case eo.File != "":
		b, err := os.ReadFile(eo.File)
		return string(b), err
	case eo.Editor:
		return editText("")
	}
	return snake.Text(cmd, "Entry", "", true)
}

// editText opens $EDITOR (or vi) on a temporary file seeded with initial.
func editText(initial string) (string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	f, err := os.CreateTemp("", "writersblock-*.md")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(initial); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", errors.New("no editor configured")
	}
	c := exec.Command(parts[0], append(parts[1:], f.Name())...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.Name())
	return string(b), err
}
