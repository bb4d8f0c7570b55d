package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// tempDirName holds in-flight writes, renamed into place once complete.
const tempDirName = ".tmp"

type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv stores every key as one file directly under basePath.
func NewDiskv(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	// Uncached, since other processes write the same files.
	return &diskvPersistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDirName),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	}), basePath: basePath}, nil
}

func (p *diskvPersistence) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *diskvPersistence) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	return p.d.Write(key, val)
}

func (p *diskvPersistence) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (p *diskvPersistence) Has(key string) bool {
	return validKey(key) == nil && p.d.Has(key)
}

func (p *diskvPersistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *diskvPersistence) Close() error {
	return nil
}

func (p *diskvPersistence) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if strings.HasPrefix(rel, ".") {
		return ""
	}
	return rel
}

// Keys live flat under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

// Nested files, such as leftovers in the temp dir, map to dot keys that
// Keys skips.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return filepath.Join(append(pathKey.Path, pathKey.FileName)...)
}
