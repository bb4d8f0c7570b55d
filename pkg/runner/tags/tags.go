// Package tags contains runners for the tag palette.
package tags

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
)

// List prints the palette.
type List struct {
	Service *app.Service
	ShowID  bool
	JSON    bool
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list tags, no service")
	}
	tags, err := l.Service.Tags(ctx)
	if err != nil {
		return err
	}
	if l.JSON {
		return printers.JSON(nil, tags)
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.NewLine()
	pp.Tags(tags)
	return nil
}

// Create adds a tag.
type Create struct {
	Service *app.Service
	Name    string
	Color   string
}

func (c *Create) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not create tag, no service")
	}
	tag, err := c.Service.CreateTag(ctx, c.Name, c.Color)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Tag #%s created (%s).\n", tag.Name, tag.Color)
	return nil
}

// Update renames or recolors a tag.
type Update struct {
	Service *app.Service
	Ref     string
	Name    string
	Color   string
}

func (u *Update) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not update tag, no service")
	}
	tag, err := u.Service.UpdateTag(ctx, u.Ref, u.Name, u.Color)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Tag #%s updated (%s).\n", tag.Name, tag.Color)
	return nil
}

// Delete removes a tag from the palette.
type Delete struct {
	Service *app.Service
	Ref     string
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not delete tag, no service")
	}
	if err := d.Service.DeleteTag(ctx, d.Ref); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Tag %s deleted.\n", d.Ref)
	return nil
}
