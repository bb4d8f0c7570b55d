// Package edit contains the runner behind `writersblock edit`.
package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/printers"
)

// Edit changes an existing entry. Nil fields are left alone.
type Edit struct {
	Service *app.Service
	ID      string
	Title   *string
	Text    *string
	Notes   *string
	Tags    []string
	On      *time.Time
	JSON    bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	current, folder, err := n.Service.Entry(ctx, n.ID)
	if err != nil {
		return err
	}

	var tagIDs []string
	if n.Tags != nil {
		if tagIDs, err = n.Service.EnsureTags(ctx, n.Tags); err != nil {
			return err
		}
	}

	e, err := n.Service.UpdateEntry(ctx, folder.ID, current.ID, func(e *journal.Entry) {
		if n.Title != nil {
			e.Title = *n.Title
		}
		if n.Text != nil {
			e.Text = *n.Text
		}
		if n.Notes != nil {
			e.Notes = *n.Notes
		}
		if n.Tags != nil {
			e.TagIDs = tagIDs
		}
		if n.On != nil {
			e.Date = *n.On
		}
	})
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(nil, e)
	}
	_, _ = fmt.Fprintf(color.Output, "Updated %q, %d words.\n", e.Title, e.WordCount)
	return nil
}
