// Package move contains the runner behind `writersblock move`.
package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
)

// Move relocates an entry to another folder, creating the folder when
// Create is set.
type Move struct {
	Service *app.Service
	ID      string
	To      string
	Create  bool
	JSON    bool
}

func (m *Move) Do(ctx context.Context) error {
	if m.Service == nil {
		return errors.New("can not move, no service")
	}
	e, from, err := m.Service.Entry(ctx, m.ID)
	if err != nil {
		return err
	}

	moved, err := m.Service.MoveEntry(ctx, e.ID, from.ID, m.To)
	if errors.Is(err, app.ErrFolderNotFound) && m.Create {
		if _, err = m.Service.CreateFolder(ctx, m.To); err != nil {
			return err
		}
		moved, err = m.Service.MoveEntry(ctx, e.ID, from.ID, m.To)
	}
	if err != nil {
		return err
	}

	if m.JSON {
		return printers.JSON(nil, moved)
	}
	_, _ = fmt.Fprintf(color.Output, "Moved %q from %s to %s.\n", moved.Title, from.Name, m.To)
	return nil
}
