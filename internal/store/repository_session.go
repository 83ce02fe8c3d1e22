package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveSession,
		session.Token,
		session.UserID,
		session.SavedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Int64("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.DB.QueryRowContext(ctx, getSession)

	err := row.Scan(&session.Token, &session.UserID, &session.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Get").
			Msg("failed to scan local session row")
		return models.Session{}, fmt.Errorf("failed to scan local session row: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete local session")
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
