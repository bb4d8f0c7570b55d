// Package folders contains runners for folder management commands.
package folders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
)

// List prints every folder.
type List struct {
	Service *app.Service
	ShowID  bool
	JSON    bool
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list folders, no service")
	}
	folders, err := l.Service.Folders(ctx)
	if err != nil {
		return err
	}
	if l.JSON {
		return printers.JSON(nil, folders)
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.NewLine()
	pp.Folders(folders)
	return nil
}

// Create adds a folder.
type Create struct {
	Service *app.Service
	Name    string
}

func (c *Create) Do(ctx context.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("folder name is required")
	}
	if c.Service == nil {
		return errors.New("can not create folder, no service")
	}
	f, err := c.Service.CreateFolder(ctx, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Folder %q created.\n", f.Name)
	return nil
}
