package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists opaque session records by storage key. The
// payload is sealed by the caller; the repository never looks inside it.
type SessionRepository interface {
	// GetSession returns the payload stored under key, or ErrSessionNotFound.
	GetSession(ctx context.Context, key string) (string, error)

	// SaveSession inserts or replaces the payload stored under key.
	SaveSession(ctx context.Context, key, payload string) error

	// DeleteSession removes the record. Deleting a missing record is not an
	// error.
	DeleteSession(ctx context.Context, key string) error
}
