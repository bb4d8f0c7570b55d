// Package store persists journal state as JSON blobs keyed by name.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Well-known keys.
const (
	KeyFolders              = "writingFolders"
	KeyLegacyEntries        = "writingEntries"
	KeyTags                 = "writingTags"
	KeyWordCountGoal        = "wordCountGoal"
	KeyResetTime            = "resetTime"
	KeyGoalHistory          = "goalHistory"
	KeyGoalReachedTimes     = "goalReachedTimes"
	KeyDarkMode             = "isDarkMode"
	KeyPromptTheme          = "promptTheme"
	KeyBlockedApps          = "blockedApps"
	KeyScreenTimeAuthorized = "screenTimeAuthorized"
)

// Backend names accepted by Load.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Persistence is a single-writer key/value store. Each key holds one
// serialized value and is read and written atomically as a whole.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Load creates a Persistence for the configured backend.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch backend := strings.ToLower(strings.TrimSpace(cfg.Backend())); backend {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}
