// Package mcp provides the Model Context Protocol server integration for writersblock.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/prompt"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// Service adapts app.Service to transport-friendly shapes for the MCP server.
type Service struct {
	App  *app.Service
	Rand *rand.Rand
}

// CreateEntryOptions captures the parameters used to create a new entry.
type CreateEntryOptions struct {
	Title  string   `json:"title"`
	Text   string   `json:"text"`
	Folder string   `json:"folder"`
	Tags   []string `json:"tags"`
	Notes  string   `json:"notes"`
	// Date is RFC3339 or 2006-01-02. Empty means now.
	Date string `json:"date"`
}

// ListEntriesOptions filters ListEntries.
type ListEntriesOptions struct {
	Folder string
	Tag    string
	Range  string
	Query  string
	Limit  int
}

// FolderSummary describes a folder and basic aggregate metadata.
type FolderSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EntryCount       int    `json:"entryCount"`
	WordCount        int    `json:"wordCount"`
	LastUpdated      string `json:"lastUpdated,omitempty"`
	LatestEntryTitle string `json:"latestEntryTitle,omitempty"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Folder    string   `json:"folder"`
	FolderID  string   `json:"folderId"`
	Text      string   `json:"text"`
	Snippet   string   `json:"snippet"`
	Notes     string   `json:"notes,omitempty"`
	WordCount int      `json:"wordCount"`
	Tags      []string `json:"tags"`
	DateISO   string   `json:"date"`
	DateUnix  int64    `json:"dateUnix"`
}

// CalendarDTO is one month of the writing calendar.
type CalendarDTO struct {
	Month  string          `json:"month"`
	Cells  []calendar.Cell `json:"cells"`
	Render string          `json:"render"`
}

var errNoApp = errors.New("journal service is not configured")

// NewService builds a service wrapper around the journal service.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

// ListFolders returns summaries for every folder.
func (s *Service) ListFolders(ctx context.Context) ([]FolderSummary, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	folders, err := s.App.Folders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FolderSummary, 0, len(folders))
	for _, f := range folders {
		summary := FolderSummary{ID: f.ID, Name: f.Name, EntryCount: len(f.Entries)}
		var latest *journal.Entry
		for i := range f.Entries {
			e := &f.Entries[i]
			summary.WordCount += e.WordCount
			if latest == nil || e.Date.After(latest.Date) {
				latest = e
			}
		}
		if latest != nil {
			summary.LastUpdated = latest.Date.Format(time.RFC3339)
			summary.LatestEntryTitle = latest.Title
		}
		out = append(out, summary)
	}
	return out, nil
}

// ListTags returns the tag palette.
func (s *Service) ListTags(ctx context.Context) ([]journal.Tag, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	return s.App.Tags(ctx)
}

// CreateEntry writes a new entry, creating unknown tags by name.
func (s *Service) CreateEntry(ctx context.Context, opts CreateEntryOptions) (*EntryDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	if strings.TrimSpace(opts.Text) == "" {
		return nil, errors.New("text is required")
	}
	var date time.Time
	if strings.TrimSpace(opts.Date) != "" {
		var err error
		if date, err = ParseDate(opts.Date, s.App.Clock()); err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
	}
	tagIDs, err := s.App.EnsureTags(ctx, opts.Tags)
	if err != nil {
		return nil, err
	}
	e, err := s.App.CreateEntry(ctx, app.NewEntry{
		Title:    opts.Title,
		Text:     opts.Text,
		Date:     date,
		TagIDs:   tagIDs,
		FolderID: opts.Folder,
		Notes:    opts.Notes,
	})
	if err != nil {
		return nil, err
	}
	return s.EntryByID(ctx, e.ID)
}

// ListEntries returns entries newest first, filtered by the options.
func (s *Service) ListEntries(ctx context.Context, opts ListEntriesOptions) ([]EntryDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	r, err := timeutil.ParseRange(opts.Range)
	if err != nil {
		return nil, err
	}
	folders, err := s.App.Folders(ctx)
	if err != nil {
		return nil, err
	}
	palette, err := s.App.Tags(ctx)
	if err != nil {
		return nil, err
	}

	folderIdx := -1
	if opts.Folder != "" {
		if folderIdx = findFolder(folders, opts.Folder); folderIdx < 0 {
			return nil, fmt.Errorf("%w: %q", app.ErrFolderNotFound, opts.Folder)
		}
	}
	tagID := ""
	if opts.Tag != "" {
		i := journal.TagIndex(palette, opts.Tag)
		if i < 0 {
			i = journal.TagByName(palette, opts.Tag)
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", app.ErrTagNotFound, opts.Tag)
		}
		tagID = palette[i].ID
	}
	q := strings.ToLower(strings.TrimSpace(opts.Query))

	entries, err := s.App.Entries(ctx, r)
	if err != nil {
		return nil, err
	}
	owner := ownerIndex(folders)
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		fi := owner[e.ID]
		if folderIdx >= 0 && fi != folderIdx {
			continue
		}
		if tagID != "" && !e.HasTag(tagID) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Title+"\n"+e.Text), q) {
			continue
		}
		out = append(out, toDTO(e, folders[fi], palette))
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

// EntryByID locates an entry by id or unique id prefix.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	e, f, err := s.App.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	palette, err := s.App.Tags(ctx)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, f, palette)
	return &dto, nil
}

// MoveEntry relocates an entry to the named folder.
func (s *Service) MoveEntry(ctx context.Context, id, folder string) (*EntryDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	e, from, err := s.App.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.App.MoveEntry(ctx, e.ID, from.ID, folder); err != nil {
		return nil, err
	}
	return s.EntryByID(ctx, e.ID)
}

// DeleteEntry removes an entry and returns what was deleted.
func (s *Service) DeleteEntry(ctx context.Context, id string) (*EntryDTO, error) {
	dto, err := s.EntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.App.DeleteEntry(ctx, dto.FolderID, dto.ID); err != nil {
		return nil, err
	}
	return dto, nil
}

// Stats computes the dashboard report for a range such as "all" or "month".
func (s *Service) Stats(ctx context.Context, rangeArg string) (*app.Report, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	r, err := timeutil.ParseRange(rangeArg)
	if err != nil {
		return nil, err
	}
	rep, err := s.App.Report(ctx, r)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// Calendar builds the grid for a month such as "2024-03". Empty means the
// current month.
func (s *Service) Calendar(ctx context.Context, month string) (*CalendarDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	now := s.App.Clock()
	m := calendar.MonthOf(now)
	if strings.TrimSpace(month) != "" {
		var err error
		if m, err = calendar.ParseMonth(month); err != nil {
			return nil, err
		}
	}
	grid, err := s.App.Calendar(ctx, m)
	if err != nil {
		return nil, err
	}
	return &CalendarDTO{
		Month:  m.String(),
		Cells:  grid[:],
		Render: calendar.Render(m, grid, now, calendar.PlainOptions()),
	}, nil
}

// Prompt returns a random writing prompt for the theme, or the configured
// theme when empty.
func (s *Service) Prompt(ctx context.Context, theme string) (string, error) {
	t := prompt.ThemeAll
	switch {
	case strings.TrimSpace(theme) != "":
		var err error
		if t, err = prompt.ParseTheme(theme); err != nil {
			return "", err
		}
	case s.App != nil:
		prefs, err := s.App.Settings(ctx)
		if err != nil {
			return "", err
		}
		t = prefs.PromptTheme
	}
	r := s.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return prompt.Random(t, r), nil
}

// ParseDate accepts RFC3339 or a bare day, which takes the time of day of now.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(timeutil.LayoutDay, input, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}

func findFolder(folders []journal.Folder, ref string) int {
	if i := journal.FolderIndex(folders, ref); i >= 0 {
		return i
	}
	return journal.FolderByName(folders, ref)
}

func ownerIndex(folders []journal.Folder) map[string]int {
	owner := map[string]int{}
	for i, f := range folders {
		for _, e := range f.Entries {
			owner[e.ID] = i
		}
	}
	return owner
}

func toDTO(e journal.Entry, f journal.Folder, palette []journal.Tag) EntryDTO {
	tags := journal.ResolveTags(e, palette)
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return EntryDTO{
		ID:        e.ID,
		Title:     e.Title,
		Folder:    f.Name,
		FolderID:  f.ID,
		Text:      e.Text,
		Snippet:   e.Snippet(),
		Notes:     e.Notes,
		WordCount: e.WordCount,
		Tags:      names,
		DateISO:   e.Date.Format(time.RFC3339),
		DateUnix:  e.Date.Unix(),
	}
}
