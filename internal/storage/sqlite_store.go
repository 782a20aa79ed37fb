package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/models"
)

// SQLiteStore persists the state document as a single row in a key/value
// table. The document stays an opaque JSON blob; SQLite only provides the
// durable container.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.ensureOpen(); err != nil {
		return err
	}

	return s.Save(models.DefaultState())
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create state table: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (models.AppState, error) {
	if err := s.ensureOpen(); err != nil {
		return models.DefaultState(), err
	}

	var raw string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, constants.StateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DefaultState(), nil
	}
	if err != nil {
		return models.DefaultState(), fmt.Errorf("failed to read state: %w", err)
	}

	state, err := DecodeState([]byte(raw))
	if err != nil {
		logger.Warn("Stored state is unreadable, starting from defaults", "path", s.path, "error", err)
		return state, nil
	}

	return state, nil
}

func (s *SQLiteStore) Save(state models.AppState) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	data, err := EncodeState(state)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		constants.StateKey, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
