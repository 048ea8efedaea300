package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`

// SQLite is the persistent Storage implementation. Snapshots are
// opaque JSON strings keyed by month; the table carries an update
// timestamp for debugging, nothing reads it.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get implements Storage.
func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements Storage.
func (s *SQLite) Set(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, now)
	return err
}

// Keys returns all stored month keys, for the config command's
// diagnostics output.
func (s *SQLite) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM snapshots ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
