// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the fields of an entry being written or edited.
type EntryOptions struct {
	Title  string
	Tags   []string
	Notes  string
	File   string
	Editor bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the entry.")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag name or id, repeat or comma separate for more. Unknown names are created.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Notes kept alongside the entry.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		`Read the entry text from a file, "-" for stdin.`)
	cmd.Flags().BoolVarP(&o.Editor, "editor", "e", false,
		"Compose the entry text in $EDITOR.")
}

// FolderOptions selects a folder by id or name.
type FolderOptions struct {
	Folder string
}

func AddFolderArgs(cmd *cobra.Command, o *FolderOptions) {
	cmd.Flags().StringVarP(&o.Folder, "folder", "c", "",
		`Folder name or id. Defaults to "All Entries".`)
}
