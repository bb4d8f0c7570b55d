package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// SQLiteFile is the database file created inside the configured path.
const SQLiteFile = "writersblock.sqlite"

type sqlitePersistence struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a single-table key/value database in
// basePath.
func NewSQLite(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	db, err := sql.Open("sqlite3", filepath.Join(basePath, SQLiteFile))
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// One writer; sqlite serialises anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &sqlitePersistence{db: db}, nil
}

func (s *sqlitePersistence) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var val []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *sqlitePersistence) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, val, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *sqlitePersistence) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (s *sqlitePersistence) Has(key string) bool {
	if validKey(key) != nil {
		return false
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM kv WHERE key = ?", key).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

func (s *sqlitePersistence) Keys(ctx context.Context) []string {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: list keys: %v\n", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			fmt.Fprintf(os.Stderr, "store: scan key: %v\n", err)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (s *sqlitePersistence) Watch(context.Context) (<-chan Event, error) {
	return nil, ErrWatchUnsupported
}

func (s *sqlitePersistence) Close() error {
	return s.db.Close()
}
