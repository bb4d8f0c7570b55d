// Package remove contains the runner behind `writersblock delete`.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/journal"
)

// Remove deletes an entry after Confirm agrees.
type Remove struct {
	Service *app.Service
	ID      string
	// Confirm is asked before deleting. Nil deletes without asking.
	Confirm func(e journal.Entry) (bool, error)
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not delete, no service")
	}
	e, folder, err := r.Service.Entry(ctx, r.ID)
	if err != nil {
		return err
	}
	if r.Confirm != nil {
		ok, err := r.Confirm(e)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = color.New(color.Faint).Fprintln(color.Output, "Kept.")
			return nil
		}
	}
	if err := r.Service.DeleteEntry(ctx, folder.ID, e.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Deleted %q from %s.\n", e.Title, folder.Name)
	return nil
}
