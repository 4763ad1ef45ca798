package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
)

// InMemoryDSN selects the process-local session store.
const InMemoryDSN = ":memory:"

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionRepository persists the sealed auth session.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. An empty DSN or ":memory:" selects the in-memory repository.
//  2. Otherwise the SQLite file at cfg.DSN is opened (and created) and the
//     embedded migrations are applied.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DSN == "" || cfg.DSN == InMemoryDSN {
		return &ClientStorages{SessionRepository: NewMemorySessionRepository()}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
