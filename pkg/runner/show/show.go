// Package show renders a single entry as markdown.
package show

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/printers"
)

type Show struct {
	Service *app.Service
	ID      string
	Width   int
	Raw     bool
	JSON    bool
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no service")
	}
	e, folder, err := s.Service.Entry(ctx, s.ID)
	if err != nil {
		return err
	}
	if s.JSON {
		return printers.JSON(nil, e)
	}
	palette, err := s.Service.Tags(ctx)
	if err != nil {
		return err
	}

	if s.Raw || color.NoColor {
		pp := printers.PrettyPrint{Width: s.Width}
		pp.Entry(e, folder.Name, palette)
		return nil
	}

	width := s.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(Markdown(e, folder.Name, palette))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(color.Output, out)
	return nil
}

// Markdown lays out the entry as a markdown document.
func Markdown(e journal.Entry, folder string, palette []journal.Tag) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "*%s · %s · %d words*\n\n", e.Date.Local().Format("Monday, Jan 2, 2006 15:04"), folder, e.WordCount)
	if tags := journal.ResolveTags(e, palette); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, t := range tags {
			names = append(names, "`#"+t.Name+"`")
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(names, " "))
	}
	b.WriteString(strings.TrimSpace(e.Text))
	b.WriteString("\n")
	if notes := strings.TrimSpace(e.Notes); notes != "" {
		b.WriteString("\n---\n\n")
		for _, line := range strings.Split(notes, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
	}
	return b.String()
}
