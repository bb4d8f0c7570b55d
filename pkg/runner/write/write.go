// Package write contains the runner behind `writersblock write`.
package write

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
)

// Write saves a new entry.
type Write struct {
	Service *app.Service
	Title   string
	Text    string
	Folder  string
	Tags    []string
	Notes   string
	On      *time.Time
	JSON    bool
}

func (w *Write) Do(ctx context.Context) error {
	if w.Service == nil {
		return errors.New("can not write, no service")
	}

	// Empty bodies are not saved, so no tags are created for them either.
	if strings.TrimSpace(w.Text) == "" {
		nothingToSave()
		return nil
	}

	tagIDs, err := w.Service.EnsureTags(ctx, w.Tags)
	if err != nil {
		return err
	}

	ne := app.NewEntry{
		Title:    w.Title,
		Text:     w.Text,
		TagIDs:   tagIDs,
		FolderID: w.Folder,
		Notes:    w.Notes,
	}
	if w.On != nil {
		ne.Date = *w.On
	}

	before, err := w.reachedToday(ctx)
	if err != nil {
		return err
	}
	e, err := w.Service.CreateEntry(ctx, ne)
	if err != nil {
		return err
	}
	if e == nil {
		nothingToSave()
		return nil
	}
	after, err := w.reachedToday(ctx)
	if err != nil {
		return err
	}

	if w.JSON {
		return printers.JSON(nil, e)
	}
	_, _ = fmt.Fprintf(color.Output, "Saved %q, %d words.\n", e.Title, e.WordCount)
	if after && !before {
		_, _ = color.New(color.FgGreen, color.Bold).Fprintln(color.Output, "Daily goal reached!")
	}
	return nil
}

func (w *Write) reachedToday(ctx context.Context) (bool, error) {
	days, err := w.Service.GoalDays(ctx)
	if err != nil || len(days) == 0 {
		return false, err
	}
	return days[0].Achieved, nil
}

func nothingToSave() {
	_, _ = color.New(color.Faint).Fprintln(color.Output, "Nothing to save, the entry is empty.")
}
