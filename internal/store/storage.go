// Package store provides the key-value persistence layer for month
// snapshots: a Storage interface, an in-memory implementation, and a
// SQLite-backed one for real use.
package store

import (
	"os"
	"path/filepath"
)

// Storage is a minimal key-value store. Get's second return reports
// whether the key exists, so an empty value is distinguishable from an
// absent one.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Memory is a map-backed Storage for tests and ephemeral sessions.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Storage.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Storage.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	return len(m.values)
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitgrid")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "habitgrid")
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "habits.db")
}
