// Package sqlite persists portal snapshots in a single-file embedded
// database, keeping the two-key layout of the original browser store.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a storage.Provider backed by an embedded sqlite database.
type Store struct {
	db *sql.DB
}

var _ storage.Provider = (*Store)(nil)

// New opens (creating if necessary) the snapshot database at path.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}

	return &Store{db: db}, nil
}

// LoadState returns the stored collections, or nil when no snapshot exists.
func (s *Store) LoadState() (*models.AppData, error) {
	raw, ok, err := s.get(storage.StateKey)
	if err != nil || !ok {
		return nil, err
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode state snapshot: %w", err)
	}
	return &data, nil
}

// SaveState writes the full snapshot, replacing any previous one.
func (s *Store) SaveState(data *models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	return s.put(storage.StateKey, raw)
}

// LoadSession returns the stored session user, or nil when logged out.
func (s *Store) LoadSession() (*models.SessionUser, error) {
	raw, ok, err := s.get(storage.SessionKey)
	if err != nil || !ok {
		return nil, err
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &user, nil
}

// SaveSession writes the full session-user record.
func (s *Store) SaveSession(user *models.SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return s.put(storage.SessionKey, raw)
}

// ClearSession removes the session record, independent of the bulk snapshot.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, storage.SessionKey)
	if err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *Store) put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}
