package storage

import "github.com/julianstephens/goalkeeper/internal/models"

// Provider persists the full application state document as a single blob.
//
// Load must always return a usable state: a missing or unreadable store
// degrades to the default document rather than failing. Save overwrites the
// stored blob wholesale; callers treat write failures as non-fatal.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// State document
	Load() (models.AppState, error)
	Save(models.AppState) error

	// Utils
	GetConfigPath() string
}
