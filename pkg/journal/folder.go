package journal

import (
	"errors"
	"strings"
)

// AllEntries is the name of the catch-all folder. Exactly one exists after
// NormalizeFolders.
const AllEntries = "All Entries"

// Folder is a named, ordered container of entries. Entries are owned by
// exactly one folder.
type Folder struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

var (
	// ErrEntryNotFound is returned when an entry id is not in the folder set.
	ErrEntryNotFound = errors.New("journal: entry not found")
	// ErrFolderNotFound is returned when a folder id is not in the folder set.
	ErrFolderNotFound = errors.New("journal: folder not found")
)

// NewFolder creates an empty folder with a fresh id.
func NewFolder(name string) Folder {
	return Folder{ID: NewID(), Name: strings.TrimSpace(name), Entries: []Entry{}}
}

// IsAllEntries reports whether f is the catch-all folder.
func (f *Folder) IsAllEntries() bool {
	return f.Name == AllEntries
}

// IndexOf returns the position of the entry id in the folder or -1.
func (f *Folder) IndexOf(entryID string) int {
	for i := range f.Entries {
		if f.Entries[i].ID == entryID {
			return i
		}
	}
	return -1
}

// NormalizeFolders guarantees exactly one "All Entries" folder, placed first.
// Every folder persisted under that name is merged into it, keeping the
// relative order of their entries. The other folders keep their order.
func NormalizeFolders(folders []Folder) []Folder {
	var (
		all   *Folder
		other = make([]Folder, 0, len(folders))
	)
	for _, f := range folders {
		if !f.IsAllEntries() {
			if f.Entries == nil {
				f.Entries = []Entry{}
			}
			other = append(other, f)
			continue
		}
		if all == nil {
			merged := Folder{ID: f.ID, Name: AllEntries, Entries: make([]Entry, 0, len(f.Entries))}
			all = &merged
		}
		all.Entries = append(all.Entries, f.Entries...)
	}
	if all == nil {
		created := NewFolder(AllEntries)
		all = &created
	}
	if all.ID == "" {
		all.ID = NewID()
	}
	return append([]Folder{*all}, other...)
}

// DefaultFolders is the collection used on a fresh install.
func DefaultFolders() []Folder {
	return []Folder{NewFolder(AllEntries)}
}

// WrapLegacy puts a flat entry list into a synthesized "All Entries" folder.
func WrapLegacy(entries []Entry) []Folder {
	f := NewFolder(AllEntries)
	f.Entries = append(f.Entries, entries...)
	return []Folder{f}
}

// Flatten returns every entry across folders in folder order.
func Flatten(folders []Folder) []Entry {
	n := 0
	for _, f := range folders {
		n += len(f.Entries)
	}
	out := make([]Entry, 0, n)
	for _, f := range folders {
		out = append(out, f.Entries...)
	}
	return out
}

// FolderIndex returns the index of the folder id, or -1.
func FolderIndex(folders []Folder, id string) int {
	for i := range folders {
		if folders[i].ID == id {
			return i
		}
	}
	return -1
}

// FolderByName returns the index of the first folder with the name, or -1.
func FolderByName(folders []Folder, name string) int {
	name = strings.TrimSpace(name)
	for i := range folders {
		if strings.EqualFold(folders[i].Name, name) {
			return i
		}
	}
	return -1
}

// AllEntriesIndex returns the index of the catch-all folder, or -1.
func AllEntriesIndex(folders []Folder) int {
	for i := range folders {
		if folders[i].IsAllEntries() {
			return i
		}
	}
	return -1
}

// FindEntry locates an entry anywhere in the folder set.
func FindEntry(folders []Folder, entryID string) (folderIdx, entryIdx int, err error) {
	for fi := range folders {
		if ei := folders[fi].IndexOf(entryID); ei >= 0 {
			return fi, ei, nil
		}
	}
	return -1, -1, ErrEntryNotFound
}

// Clone deep copies a folder set so callers can mutate it freely.
func Clone(folders []Folder) []Folder {
	out := make([]Folder, len(folders))
	for i, f := range folders {
		out[i] = Folder{ID: f.ID, Name: f.Name, Entries: make([]Entry, len(f.Entries))}
		for j, e := range f.Entries {
			if e.TagIDs != nil {
				e.TagIDs = append([]string(nil), e.TagIDs...)
			}
			out[i].Entries[j] = e
		}
	}
	return out
}
