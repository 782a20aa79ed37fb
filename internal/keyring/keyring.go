package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/goalkeeper/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is found in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the scoring API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAPIKey() (string, error) {
	return get(constants.KeyringAPIKeyUser)
}

// SetAPIKey stores the scoring API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	return set(constants.KeyringAPIKeyUser, key)
}

// DeleteAPIKey removes the scoring API key from the OS keyring.
func DeleteAPIKey() error {
	return del(constants.KeyringAPIKeyUser)
}

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	return get(constants.KeyringDBUser)
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	return set(constants.KeyringDBUser, connStr)
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	return del(constants.KeyringDBUser)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty; any other error
	// likely indicates the keyring is not available.
	return err == nil || err == keyring.ErrNotFound
}

func get(user string) (string, error) {
	secret, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

func set(user, secret string) error {
	if err := keyring.Set(constants.AppName, user, secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	err := keyring.Delete(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}
