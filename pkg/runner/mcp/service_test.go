package mcp

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/store"
)

var fixedNow = time.Date(2024, time.March, 10, 20, 0, 0, 0, time.Local)

func newTestService() *Service {
	svc := app.New(store.NewMemory())
	svc.Now = func() time.Time { return fixedNow }
	s := NewService(svc)
	s.Rand = rand.New(rand.NewSource(1))
	return s
}

func TestServiceCreateEntryDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.CreateEntry(ctx, CreateEntryOptions{
		Text: "the quick brown fox",
		Tags: []string{"animals"},
	})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	if dto.Folder != "All Entries" {
		t.Fatalf("expected All Entries, got %s", dto.Folder)
	}
	if dto.Title != "New Entry" {
		t.Fatalf("expected default title, got %s", dto.Title)
	}
	if dto.WordCount != 4 {
		t.Fatalf("expected 4 words, got %d", dto.WordCount)
	}
	if len(dto.Tags) != 1 || dto.Tags[0] != "animals" {
		t.Fatalf("expected animals tag, got %v", dto.Tags)
	}
	if dto.DateUnix != fixedNow.Unix() {
		t.Fatalf("expected entry dated now, got %s", dto.DateISO)
	}
}

func TestServiceCreateEntryRequiresText(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if _, err := svc.CreateEntry(ctx, CreateEntryOptions{Text: "   ", Tags: []string{"dreams"}}); err == nil {
		t.Fatalf("expected error for blank text")
	}
	tags, err := svc.ListTags(ctx)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags created for blank text, got %+v", tags)
	}
}

func TestServiceCreateEntryDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.CreateEntry(ctx, CreateEntryOptions{Text: "back then", Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	want := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.Local)
	if dto.DateUnix != want.Unix() {
		t.Fatalf("expected %v, got %s", want, dto.DateISO)
	}

	if _, err := svc.CreateEntry(ctx, CreateEntryOptions{Text: "x", Date: "last week"}); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestServiceListEntriesFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.App.CreateFolder(ctx, "Dreams"); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	mustCreate := func(opts CreateEntryOptions) *EntryDTO {
		t.Helper()
		dto, err := svc.CreateEntry(ctx, opts)
		if err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
		return dto
	}
	mustCreate(CreateEntryOptions{Text: "flying over water", Folder: "Dreams", Date: "2024-03-08"})
	mustCreate(CreateEntryOptions{Text: "groceries and errands", Tags: []string{"chores"}, Date: "2024-03-09"})
	mustCreate(CreateEntryOptions{Text: "more errands", Date: "2024-01-02"})

	all, err := svc.ListEntries(ctx, ListEntriesOptions{})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[0].Snippet != "groceries and errands" {
		t.Fatalf("expected newest first, got %q", all[0].Snippet)
	}

	dreams, err := svc.ListEntries(ctx, ListEntriesOptions{Folder: "dreams"})
	if err != nil {
		t.Fatalf("ListEntries by folder failed: %v", err)
	}
	if len(dreams) != 1 || dreams[0].Folder != "Dreams" {
		t.Fatalf("expected the dream entry, got %+v", dreams)
	}

	chores, err := svc.ListEntries(ctx, ListEntriesOptions{Tag: "chores"})
	if err != nil {
		t.Fatalf("ListEntries by tag failed: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("expected 1 chores entry, got %d", len(chores))
	}

	errands, err := svc.ListEntries(ctx, ListEntriesOptions{Query: "ERRANDS", Range: "month"})
	if err != nil {
		t.Fatalf("ListEntries by query failed: %v", err)
	}
	if len(errands) != 1 {
		t.Fatalf("expected only the recent errands entry, got %d", len(errands))
	}

	limited, err := svc.ListEntries(ctx, ListEntriesOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListEntries with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(limited))
	}

	if _, err := svc.ListEntries(ctx, ListEntriesOptions{Folder: "Nope"}); !errors.Is(err, app.ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestServiceMoveAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.App.CreateFolder(ctx, "Ideas"); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	dto, err := svc.CreateEntry(ctx, CreateEntryOptions{Text: "a story about a lighthouse"})
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	moved, err := svc.MoveEntry(ctx, dto.ID[:8], "Ideas")
	if err != nil {
		t.Fatalf("MoveEntry failed: %v", err)
	}
	if moved.Folder != "Ideas" || moved.ID != dto.ID {
		t.Fatalf("expected entry in Ideas with same id, got %+v", moved)
	}

	folders, err := svc.ListFolders(ctx)
	if err != nil {
		t.Fatalf("ListFolders failed: %v", err)
	}
	for _, f := range folders {
		switch f.Name {
		case "Ideas":
			if f.EntryCount != 1 || f.WordCount != 5 || f.LatestEntryTitle != "New Entry" {
				t.Fatalf("unexpected Ideas summary %+v", f)
			}
		case "All Entries":
			if f.EntryCount != 0 {
				t.Fatalf("expected All Entries to be empty, got %d", f.EntryCount)
			}
		}
	}

	deleted, err := svc.DeleteEntry(ctx, dto.ID)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if deleted.ID != dto.ID {
		t.Fatalf("expected deleted id %s, got %s", dto.ID, deleted.ID)
	}
	if _, err := svc.EntryByID(ctx, dto.ID); !errors.Is(err, app.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestServiceStatsAndCalendar(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	for _, day := range []string{"2024-03-09", "2024-03-10"} {
		if _, err := svc.CreateEntry(ctx, CreateEntryOptions{Text: "one two three four five", Date: day}); err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
	}

	rep, err := svc.Stats(ctx, "all")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if rep.Summary.TotalWords != 10 || rep.Summary.Streak != 2 {
		t.Fatalf("unexpected summary %+v", rep.Summary)
	}
	if _, err := svc.Stats(ctx, "fortnight"); err == nil {
		t.Fatalf("expected invalid range error")
	}

	cal, err := svc.Calendar(ctx, "")
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if cal.Month != "March 2024" || len(cal.Cells) != calendar.Cells {
		t.Fatalf("unexpected calendar %s with %d cells", cal.Month, len(cal.Cells))
	}
	// March 2024 starts on a Friday.
	if cal.Cells[5].Day != 1 {
		t.Fatalf("expected day 1 in cell 5, got %+v", cal.Cells[5])
	}
	if cal.Cells[5+8].Status != calendar.Completed || cal.Cells[5+9].Status != calendar.Completed {
		t.Fatalf("expected 9th and 10th completed")
	}
	if !strings.Contains(cal.Render, "March 2024") {
		t.Fatalf("expected rendered title, got %q", cal.Render)
	}

	if _, err := svc.Calendar(ctx, "Smarch"); err == nil {
		t.Fatalf("expected invalid month error")
	}
}

func TestServicePrompt(t *testing.T) {
	svc := newTestService()
	p, err := svc.Prompt(context.Background(), "creative")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if p == "" {
		t.Fatalf("expected a prompt")
	}
	if _, err := svc.Prompt(context.Background(), "poetry"); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestRunnerRequiresService(t *testing.T) {
	if _, err := (Runner{}).NewServer(); err == nil {
		t.Fatalf("expected error without a service")
	}
	r := Runner{Service: app.New(store.NewMemory())}
	if _, err := r.NewServer(); err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
}
