// Package interfaces defines service contracts for Lune
package interfaces

import (
	"context"
	"errors"

	"github.com/lunehq/lune/internal/models"
)

// ErrNotFound is returned by store lookups when the record does not exist.
// Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("not found")

// StorageManager coordinates the storage backends.
type StorageManager interface {
	InternalStore() InternalStore

	// DataPath returns the base data directory path.
	DataPath() string

	Close() error
}

// InternalStore manages user accounts, birth profiles, per-user config, and
// system-level KV.
type InternalStore interface {
	// User accounts
	GetUser(ctx context.Context, userID string) (*models.InternalUser, error)
	GetUserByEmail(ctx context.Context, email string) (*models.InternalUser, error)
	SaveUser(ctx context.Context, user *models.InternalUser) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]string, error)

	// Birth profiles (one per user)
	GetBirthProfile(ctx context.Context, userID string) (*models.BirthProfile, error)
	SaveBirthProfile(ctx context.Context, profile *models.BirthProfile) error

	// Per-user key-value config
	GetUserKV(ctx context.Context, userID, key string) (*models.UserKeyValue, error)
	SetUserKV(ctx context.Context, userID, key, value string) error
	DeleteUserKV(ctx context.Context, userID, key string) error
	ListUserKV(ctx context.Context, userID string) ([]*models.UserKeyValue, error)

	// System key-value (non-user-scoped)
	GetSystemKV(ctx context.Context, key string) (string, error)
	SetSystemKV(ctx context.Context, key, value string) error

	Close() error
}
