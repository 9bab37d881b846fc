// Package storage defines the persistence capability the state store
// delegates to after every mutation: a small key-value blob store holding
// the full snapshot under one key and the session-user record under another.
package storage

import "github.com/yigit/campushire/internal/app/models"

// Default keys, carried over from the portal's original local storage.
const (
	StateKey   = "campusHireData"
	SessionKey = "currentUser"
)

// Provider persists and restores the application snapshot. LoadState and
// LoadSession return nil (with no error) when nothing has been stored yet.
type Provider interface {
	LoadState() (*models.AppData, error)
	SaveState(data *models.AppData) error
	LoadSession() (*models.SessionUser, error)
	SaveSession(user *models.SessionUser) error
	ClearSession() error
	Close() error
}
