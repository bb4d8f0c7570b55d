package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/writersblock/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
	// Width wraps entry bodies. Zero means 80.
	Width int
	Out   io.Writer
}

const (
	layoutDate = "Jan 2, 2006"
	layoutTime = "Jan 2, 2006 15:04"
	idWidth    = 8
)

var (
	spacing = strings.Repeat(" ", idWidth+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func shortID(id string) string {
	if len(id) > idWidth {
		return id[:idWidth]
	}
	return id
}

// Entries prints one line per entry: date, title, word count, tags and the
// first line of the body.
func (pp *PrettyPrint) Entries(palette []journal.Tag, entries ...journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	for _, e := range entries {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(shortID(e.ID)))
		}
		row = append(row,
			faint.Sprint(e.Date.Local().Format(layoutDate)),
			bold.Sprint(e.Title),
			fmt.Sprintf("%d words", e.WordCount),
			tagList(journal.ResolveTags(e, palette)),
			truncate.StringWithTail(e.Snippet(), 40, "…"),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func tagList(tags []journal.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	c := color.New(color.FgCyan)
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, c.Sprint("#"+t.Name))
	}
	return strings.Join(names, " ")
}

// Entry prints the whole entry with its body wrapped to Width.
func (pp *PrettyPrint) Entry(e journal.Entry, folder string, palette []journal.Tag) {
	faint := color.New(color.Faint)

	pp.Title(e.Title)
	_, _ = faint.Fprintf(pp.out(), "%s · %s · %d words\n", e.Date.Local().Format(layoutTime), folder, e.WordCount)
	if tags := tagList(journal.ResolveTags(e, palette)); tags != "" {
		_, _ = fmt.Fprintln(pp.out(), tags)
	}
	if pp.ShowID {
		_, _ = faint.Fprintf(pp.out(), "id: %s\n", e.ID)
	}
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(e.Text, pp.width()))
	if strings.TrimSpace(e.Notes) != "" {
		pp.NewLine()
		_, _ = color.New(color.Italic).Fprintln(pp.out(), wordwrap.String(e.Notes, pp.width()))
	}
	pp.NewLine()
}

// Folders prints the folders with their entry and word counts.
func (pp *PrettyPrint) Folders(folders []journal.Folder) {
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("", bold.Sprint("Folder"), bold.Sprint("Entries"), bold.Sprint("Words"))
	} else {
		tbl.AddRow(bold.Sprint("Folder"), bold.Sprint("Entries"), bold.Sprint("Words"))
	}
	for _, f := range folders {
		words := 0
		for _, e := range f.Entries {
			words += e.WordCount
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(shortID(f.ID)), f.Name, len(f.Entries), words)
		} else {
			tbl.AddRow(f.Name, len(f.Entries), words)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Tags prints the palette.
func (pp *PrettyPrint) Tags(tags []journal.Tag) {
	if len(tags) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " no tags\n\n")
		return
	}
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Color"), "")
	for _, t := range tags {
		id := ""
		if pp.ShowID {
			id = y.Sprint(shortID(t.ID))
		}
		tbl.AddRow("#"+t.Name, t.Color, id)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
