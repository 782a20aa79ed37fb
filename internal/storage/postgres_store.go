package storage

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/logger"
	"github.com/julianstephens/goalkeeper/internal/models"
)

// PostgresStore persists the state document in a key/value table, for users
// who want the document on a shared database host instead of the local disk.
// The document is still one opaque JSON blob under one fixed key.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

// NewPostgresStore creates a store for the given connection string. The
// string must not embed a password; credentials come from the environment,
// .pgpass, or the OS keyring (see cmd/goalkeeper).
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a postgres:// URL carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Init() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM goalkeeper_state WHERE key = $1)`, constants.StateKey).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check existing state: %w", err)
	}
	if exists {
		return fmt.Errorf("storage already initialized at %s", s.connStr)
	}

	return s.Save(models.DefaultState())
}

func (s *PostgresStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS goalkeeper_state (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create state table: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Load() (models.AppState, error) {
	if err := s.ensureOpen(); err != nil {
		return models.DefaultState(), err
	}

	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM goalkeeper_state WHERE key = $1`, constants.StateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.DefaultState(), nil
	}
	if err != nil {
		return models.DefaultState(), fmt.Errorf("failed to read state: %w", err)
	}

	state, err := DecodeState(raw)
	if err != nil {
		logger.Warn("Stored state is unreadable, starting from defaults", "error", err)
		return state, nil
	}

	return state, nil
}

func (s *PostgresStore) Save(state models.AppState) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	data, err := EncodeState(state)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO goalkeeper_state (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		constants.StateKey, data)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
