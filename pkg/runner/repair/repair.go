// Package repair moves unreadable records aside so the journal loads again.
package repair

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
)

type Repair struct {
	Service *app.Service
}

func (r *Repair) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not repair, no service")
	}
	backups, err := r.Service.Repair(ctx)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		_, _ = color.New(color.FgGreen).Fprintln(color.Output, "Nothing to repair.")
		return nil
	}
	for _, b := range backups {
		_, _ = fmt.Fprintf(color.Output, "Moved unreadable data to %s\n", b)
	}
	return nil
}
