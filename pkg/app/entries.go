package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/timeutil"
)

// NewEntry carries the fields of an entry about to be written.
type NewEntry struct {
	Title  string
	Text   string
	Date   time.Time
	TagIDs []string
	// FolderID is a folder id or name. Empty means "All Entries".
	FolderID string
	Notes    string
}

// resolveFolder finds a folder by id, then by name. Empty ref is the
// catch-all folder.
func resolveFolder(folders []journal.Folder, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		if i := journal.AllEntriesIndex(folders); i >= 0 {
			return i, nil
		}
		return -1, ErrFolderNotFound
	}
	if i := journal.FolderIndex(folders, ref); i >= 0 {
		return i, nil
	}
	if i := journal.FolderByName(folders, ref); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrFolderNotFound, ref)
}

// CreateEntry appends a new entry to the chosen folder. An entry whose text
// is empty after trimming is not written and (nil, nil) is returned.
func (s *Service) CreateEntry(ctx context.Context, ne NewEntry) (*journal.Entry, error) {
	if strings.TrimSpace(ne.Text) == "" {
		return nil, nil
	}
	date := ne.Date
	if date.IsZero() {
		date = s.now()
	}
	e := journal.NewEntry(ne.Title, ne.Text, date, ne.TagIDs)
	e.Notes = ne.Notes

	err := s.update(ctx, Change{Kind: ChangeFolders, EntryID: e.ID}, func(folders []journal.Folder) ([]journal.Folder, error) {
		fi, err := resolveFolder(folders, ne.FolderID)
		if err != nil {
			return nil, err
		}
		folders[fi].Entries = append(folders[fi].Entries, *e)
		return folders, nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.CheckGoal(ctx); err != nil {
		return e, err
	}
	return e, nil
}

// UpdateEntry applies mutate to the entry and persists it with a fresh word
// count. folderID may be empty to search every folder. The id cannot change.
func (s *Service) UpdateEntry(ctx context.Context, folderID, entryID string, mutate func(*journal.Entry)) (*journal.Entry, error) {
	var updated journal.Entry
	err := s.update(ctx, Change{Kind: ChangeFolders, EntryID: entryID, FolderID: folderID}, func(folders []journal.Folder) ([]journal.Folder, error) {
		fi, ei, err := locate(folders, folderID, entryID)
		if err != nil {
			return nil, err
		}
		e := &folders[fi].Entries[ei]
		if mutate != nil {
			mutate(e)
		}
		e.ID = entryID
		e.Recount()
		updated = *e
		return folders, nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.CheckGoal(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

// DeleteEntry removes the entry. folderID may be empty to search every folder.
func (s *Service) DeleteEntry(ctx context.Context, folderID, entryID string) error {
	return s.update(ctx, Change{Kind: ChangeFolders, EntryID: entryID, FolderID: folderID}, func(folders []journal.Folder) ([]journal.Folder, error) {
		fi, ei, err := locate(folders, folderID, entryID)
		if err != nil {
			return nil, err
		}
		entries := folders[fi].Entries
		folders[fi].Entries = append(entries[:ei:ei], entries[ei+1:]...)
		return folders, nil
	})
}

// MoveEntry relocates the entry to the end of another folder. Moving to the
// folder it is already in changes nothing.
func (s *Service) MoveEntry(ctx context.Context, entryID, fromFolderID, toFolderID string) (*journal.Entry, error) {
	var moved journal.Entry
	err := s.update(ctx, Change{Kind: ChangeFolders, EntryID: entryID, FolderID: toFolderID}, func(folders []journal.Folder) ([]journal.Folder, error) {
		fi, ei, err := locate(folders, fromFolderID, entryID)
		if err != nil {
			return nil, err
		}
		ti, err := resolveFolder(folders, toFolderID)
		if err != nil {
			return nil, err
		}
		moved = folders[fi].Entries[ei]
		if fi == ti {
			return folders, nil
		}
		entries := folders[fi].Entries
		folders[fi].Entries = append(entries[:ei:ei], entries[ei+1:]...)
		folders[ti].Entries = append(folders[ti].Entries, moved)
		return folders, nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}

func locate(folders []journal.Folder, folderID, entryID string) (int, int, error) {
	if strings.TrimSpace(folderID) == "" {
		return journal.FindEntry(folders, entryID)
	}
	fi, err := resolveFolder(folders, folderID)
	if err != nil {
		return -1, -1, err
	}
	ei := folders[fi].IndexOf(entryID)
	if ei < 0 {
		return -1, -1, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, entryID, folders[fi].Name)
	}
	return fi, ei, nil
}

// Entry returns the entry with the id and the folder holding it. A unique id
// prefix is accepted.
func (s *Service) Entry(ctx context.Context, ref string) (journal.Entry, journal.Folder, error) {
	folders, err := s.Load(ctx)
	if err != nil {
		return journal.Entry{}, journal.Folder{}, err
	}
	ref = strings.TrimSpace(ref)
	var (
		hits   int
		fi, ei int
	)
	for i := range folders {
		for j := range folders[i].Entries {
			id := folders[i].Entries[j].ID
			if id == ref {
				return folders[i].Entries[j], folders[i], nil
			}
			if ref != "" && strings.HasPrefix(id, ref) {
				hits++
				fi, ei = i, j
			}
		}
	}
	switch hits {
	case 1:
		return folders[fi].Entries[ei], folders[fi], nil
	case 0:
		return journal.Entry{}, journal.Folder{}, fmt.Errorf("%w: %s", ErrEntryNotFound, ref)
	default:
		return journal.Entry{}, journal.Folder{}, fmt.Errorf("app: id prefix %q matches %d entries", ref, hits)
	}
}

// Folders returns the folder collection.
func (s *Service) Folders(ctx context.Context) ([]journal.Folder, error) {
	return s.Load(ctx)
}

// CreateFolder adds an empty folder at the end of the collection.
func (s *Service) CreateFolder(ctx context.Context, name string) (*journal.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("app: folder name required")
	}
	if strings.EqualFold(name, journal.AllEntries) {
		return nil, fmt.Errorf("%w: %q", ErrReservedFolder, name)
	}
	f := journal.NewFolder(name)
	err := s.update(ctx, Change{Kind: ChangeFolders, FolderID: f.ID}, func(folders []journal.Folder) ([]journal.Folder, error) {
		if journal.FolderByName(folders, name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFolder, name)
		}
		return append(folders, f), nil
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Entries returns every entry dated inside r, newest first.
func (s *Service) Entries(ctx context.Context, r timeutil.DateRange) ([]journal.Entry, error) {
	folders, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	all := journal.Flatten(folders)
	out := make([]journal.Entry, 0, len(all))
	for _, e := range all {
		if r.Contains(e.Date, now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
