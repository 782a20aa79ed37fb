package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/models"
)

// JSONStore persists the state document as a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState())
}

// Load reads the stored document. A missing file yields the default document;
// a corrupt one is logged and likewise degrades to defaults. Partially valid
// documents keep every field that parses and fill the rest from defaults.
func (s *JSONStore) Load() (models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultState(), nil
		}
		return models.DefaultState(), fmt.Errorf("failed to read storage: %w", err)
	}

	state, err := DecodeState(data)
	if err != nil {
		logger.Warn("Stored state is unreadable, starting from defaults", "path", s.path, "error", err)
		return state, nil
	}

	return state, nil
}

func (s *JSONStore) Save(state models.AppState) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple goalkeeper processes that share the same storage path
//     at the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
