// Package memory provides an in-process storage.Provider used in tests.
package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yigit/campushire/internal/app/models"
	"github.com/yigit/campushire/internal/storage"
)

// Store keeps the two snapshot blobs in memory. Values are stored as JSON so
// round-trips exercise the same encoding as the sqlite provider.
type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

var _ storage.Provider = (*Store)(nil)

// New returns an empty in-memory provider.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) LoadState() (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[storage.StateKey]
	if !ok {
		return nil, nil
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode state snapshot: %w", err)
	}
	return &data, nil
}

func (s *Store) SaveState(data *models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[storage.StateKey] = raw
	return nil
}

func (s *Store) LoadSession() (*models.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[storage.SessionKey]
	if !ok {
		return nil, nil
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &user, nil
}

func (s *Store) SaveSession(user *models.SessionUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[storage.SessionKey] = raw
	return nil
}

func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, storage.SessionKey)
	return nil
}

func (s *Store) Close() error { return nil }
