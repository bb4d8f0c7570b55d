// Package log lists entries by date range.
package log

import (
	"context"
	"errors"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/printers"
	"tableflip.dev/writersblock/pkg/timeutil"
)

type Log struct {
	Service *app.Service
	Range   timeutil.DateRange
	// Folder limits the log to one folder when set.
	Folder string
	// Tag limits the log to entries carrying the tag name or id.
	Tag    string
	ShowID bool
	JSON   bool
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}

	entries, err := n.Service.Entries(ctx, n.Range)
	if err != nil {
		return err
	}
	palette, err := n.Service.Tags(ctx)
	if err != nil {
		return err
	}
	if entries, err = n.filter(ctx, entries, palette); err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(nil, entries)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(n.Range.String(), len(entries))
	pp.Entries(palette, entries...)
	return nil
}

func (n *Log) filter(ctx context.Context, entries []journal.Entry, palette []journal.Tag) ([]journal.Entry, error) {
	keep := map[string]bool(nil)
	if n.Folder != "" {
		folders, err := n.Service.Folders(ctx)
		if err != nil {
			return nil, err
		}
		i := journal.FolderIndex(folders, n.Folder)
		if i < 0 {
			i = journal.FolderByName(folders, n.Folder)
		}
		if i < 0 {
			return nil, app.ErrFolderNotFound
		}
		keep = make(map[string]bool, len(folders[i].Entries))
		for _, e := range folders[i].Entries {
			keep[e.ID] = true
		}
	}

	tagID := ""
	if n.Tag != "" {
		i := journal.TagIndex(palette, n.Tag)
		if i < 0 {
			i = journal.TagByName(palette, n.Tag)
		}
		if i < 0 {
			return nil, app.ErrTagNotFound
		}
		tagID = palette[i].ID
	}

	out := entries[:0:0]
	for _, e := range entries {
		if keep != nil && !keep[e.ID] {
			continue
		}
		if tagID != "" && !e.HasTag(tagID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
