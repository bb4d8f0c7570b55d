// Package block manages the apps selected for blocking while writing.
package block

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/printers"
)

type Block struct {
	Service *app.Service
	// Toggle flips each app, given by catalog name or bundle id.
	Toggle    []string
	Clear     bool
	Authorize bool
	JSON      bool
}

type blockJSON struct {
	Blocked    []string `json:"blocked"`
	Authorized bool     `json:"authorized"`
}

func (b *Block) Do(ctx context.Context) error {
	if b.Service == nil {
		return errors.New("can not manage blocked apps, no service")
	}
	set, err := b.Service.BlockedApps(ctx)
	if err != nil {
		return err
	}

	changed := false
	if b.Clear {
		set = blocklist.NewSet()
		changed = true
	}
	for _, name := range b.Toggle {
		id := name
		if a, ok := blocklist.Lookup(name); ok {
			id = a.BundleID
		}
		set.Toggle(id)
		changed = true
	}
	if changed {
		if err := b.Service.SaveBlockedApps(ctx, set); err != nil {
			return err
		}
	}

	authorized := b.Service.Authorized(ctx)
	if b.Authorize {
		if authorized, err = b.Service.RequestAuthorization(ctx); err != nil {
			return err
		}
		if !authorized && !b.JSON {
			_, _ = color.New(color.FgYellow).Fprintln(color.Output, "Screen time access was not granted on this platform. You can try again later.")
		}
	}

	if b.JSON {
		return printers.JSON(nil, blockJSON{Blocked: set.IDs(), Authorized: authorized})
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Blocklist(set, authorized)
	if changed {
		_, _ = fmt.Fprintf(color.Output, "%d apps selected.\n", len(set))
	}
	return nil
}
