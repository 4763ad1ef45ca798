package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/legacy-keeper/internal/logger"
)

const sessionsTable = "sessions"

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger, now: time.Now}
}

func (r *sessionRepository) GetSession(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("payload").
		From(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Str("storage_key", key).
			Msg("failed to read session")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return payload, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, key, payload string) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert(sessionsTable).
		Columns("storage_key", "payload", "updated_at").
		Values(key, payload, r.now().UTC()).
		Suffix("ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("storage_key", key).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Delete(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Str("storage_key", key).
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
