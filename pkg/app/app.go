package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/writersblock/pkg/blocklist"
	"tableflip.dev/writersblock/pkg/goal"
	"tableflip.dev/writersblock/pkg/journal"
	"tableflip.dev/writersblock/pkg/store"
)

// Service is the journal store. It owns loading and saving folders, tags,
// settings and goal records, and tells subscribers when something changed.
// One Service is created at the command root and shared by every surface.
type Service struct {
	Persistence store.Persistence
	// Authorizer answers app blocking permission requests. Nil means
	// blocklist.Unsupported.
	Authorizer blocklist.Authorizer
	// Now is the clock. Nil means time.Now.
	Now func() time.Time

	mu      sync.Mutex
	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
	tracker *goal.Tracker
}

var (
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrFolderNotFound  = journal.ErrFolderNotFound
	ErrEntryNotFound   = journal.ErrEntryNotFound
	ErrReservedFolder  = errors.New("app: folder name is reserved")
	ErrDuplicateFolder = errors.New("app: folder already exists")
	ErrTagNotFound     = errors.New("app: tag not found")
	ErrDuplicateTag    = errors.New("app: tag name already exists")
)

// LoadError reports a stored value that could not be read back. Absent data
// is never a LoadError.
type LoadError struct {
	Key     string
	Err     error
	corrupt bool
}

func (e *LoadError) Error() string {
	if e.corrupt {
		return fmt.Sprintf("app: stored %s is corrupt: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("app: reading %s: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Corrupt reports whether the value exists but does not decode.
func (e *LoadError) Corrupt() bool { return e.corrupt }

// IsCorrupt reports whether err carries a corrupt LoadError.
func IsCorrupt(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Corrupt()
}

// New returns a Service over p.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Clock returns the service's notion of now.
func (s *Service) Clock() time.Time {
	return s.now()
}

func (s *Service) ready() error {
	if s == nil || s.Persistence == nil {
		return ErrNoPersistence
	}
	return nil
}

// readJSON decodes key into v. It returns false when the key is absent.
func (s *Service) readJSON(key string, v any) (bool, error) {
	b, err := s.Persistence.Read(key)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &LoadError{Key: key, Err: err}
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, &LoadError{Key: key, Err: err, corrupt: true}
	}
	return true, nil
}

func (s *Service) writeJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("app: encode %s: %w", key, err)
	}
	if err := s.Persistence.Write(key, b); err != nil {
		return fmt.Errorf("app: write %s: %w", key, err)
	}
	return nil
}

// Load returns the folder collection. It falls back to the legacy flat entry
// list, then to a single empty "All Entries" folder. The result always has
// exactly one "All Entries" folder, first.
func (s *Service) Load(ctx context.Context) ([]journal.Folder, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var folders []journal.Folder
	found, err := s.readJSON(store.KeyFolders, &folders)
	if err != nil {
		return nil, err
	}
	if !found {
		var legacy []journal.Entry
		found, err = s.readJSON(store.KeyLegacyEntries, &legacy)
		if err != nil {
			return nil, err
		}
		if found {
			folders = journal.WrapLegacy(legacy)
		} else {
			folders = journal.DefaultFolders()
		}
	}
	folders = journal.NormalizeFolders(folders)
	if journal.HasLegacyTags(folders) {
		if err := s.adoptLegacyTags(folders); err != nil {
			return nil, err
		}
	}
	return folders, nil
}

// adoptLegacyTags writes tags embedded by older entries into the palette
// before the next save drops them from the folder records.
func (s *Service) adoptLegacyTags(folders []journal.Folder) error {
	palette := []journal.Tag{}
	if _, err := s.readJSON(store.KeyTags, &palette); err != nil {
		return err
	}
	palette, grew := journal.AdoptLegacyTags(folders, palette)
	if !grew {
		return nil
	}
	return s.writeJSON(store.KeyTags, palette)
}

// Save writes the whole collection and notifies subscribers. Word counts are
// recomputed from the text on the way out; folders is not modified.
func (s *Service) Save(ctx context.Context, folders []journal.Folder) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.saveFolders(folders); err != nil {
		return err
	}
	s.notify(Change{Kind: ChangeFolders})
	return nil
}

func (s *Service) saveFolders(folders []journal.Folder) error {
	out := journal.Clone(folders)
	for fi := range out {
		for ei := range out[fi].Entries {
			out[fi].Entries[ei].Recount()
		}
	}
	return s.writeJSON(store.KeyFolders, out)
}

// update loads the folders, applies fn and saves the result, all under the
// service lock. Subscribers are notified after the lock is released.
func (s *Service) update(ctx context.Context, change Change, fn func([]journal.Folder) ([]journal.Folder, error)) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	folders, err := s.Load(ctx)
	if err == nil {
		folders, err = fn(folders)
	}
	if err == nil {
		err = s.saveFolders(folders)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(change)
	return nil
}

// Repair moves every corrupt value aside under "<key>.corrupt-<unix>" and
// erases the original so the next load starts from defaults. It returns the
// backup keys written.
func (s *Service) Repair(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	checks := map[string]any{
		store.KeyFolders:          &[]journal.Folder{},
		store.KeyLegacyEntries:    &[]journal.Entry{},
		store.KeyTags:             &[]journal.Tag{},
		store.KeyGoalHistory:      &goal.History{},
		store.KeyGoalReachedTimes: &goal.ReachedTimes{},
	}
	var backups []string
	for key, v := range checks {
		if _, err := s.readJSON(key, v); !IsCorrupt(err) {
			continue
		}
		raw, err := s.Persistence.Read(key)
		if err != nil {
			return backups, err
		}
		backup := fmt.Sprintf("%s.corrupt-%d", key, s.now().Unix())
		if err := s.Persistence.Write(backup, raw); err != nil {
			return backups, err
		}
		if err := s.Persistence.Erase(key); err != nil {
			return backups, err
		}
		backups = append(backups, backup)
	}
	return backups, nil
}

// Watch exposes backend change events, for edits made by another process.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Persistence.Watch(ctx)
}
