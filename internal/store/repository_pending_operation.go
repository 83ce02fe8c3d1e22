package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

type pendingOperationRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingOperationRepository(db *DB, logger *logger.Logger) PendingOperationRepository {
	return &pendingOperationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *pendingOperationRepository) Add(ctx context.Context, opType models.OperationType, data []byte) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertPendingOperation,
		string(opType),
		data,
		time.Now().UnixMilli(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Add").
			Str("type", string(opType)).
			Msg("failed to insert pending operation")
		return 0, fmt.Errorf("failed to insert pending operation (type=%s): %w", opType, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.Add").
			Str("type", string(opType)).
			Msg("failed to read inserted operation id")
		return 0, fmt.Errorf("failed to read inserted operation id: %w", err)
	}

	return id, nil
}

func (r *pendingOperationRepository) GetUnsynced(ctx context.Context) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getUnsyncedOperations)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.GetUnsynced").
			Msg("failed to query unsynced operations")
		return nil, fmt.Errorf("failed to query unsynced operations: %w", err)
	}
	defer rows.Close()

	return scanOperations(rows)
}

func (r *pendingOperationRepository) List(ctx context.Context, filter models.OperationFilter) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOperationsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.List").
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.List").
			Msg("failed to query operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanOperations(rows)
}

func (r *pendingOperationRepository) MarkSynced(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markOperationSynced, id)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.MarkSynced").
			Int64("operation_id", id).
			Msg("failed to mark operation synced")
		return fmt.Errorf("failed to mark operation synced (id=%d): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.MarkSynced").
			Int64("operation_id", id).
			Msg("failed to get rows affected after mark synced")
		return fmt.Errorf("failed to get rows affected (id=%d): %w", id, err)
	}

	// A compaction pass may have already removed the row. That is fine:
	// the operation was synced either way.
	if rowsAffected == 0 {
		log.Debug().
			Str("func", "pendingOperationRepository.MarkSynced").
			Int64("operation_id", id).
			Msg("operation already removed, mark synced is a no-op")
	}

	return nil
}

func (r *pendingOperationRepository) DeleteSynced(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteSyncedOperations)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.DeleteSynced").
			Msg("failed to delete synced operations")
		return 0, fmt.Errorf("failed to delete synced operations: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.DeleteSynced").
			Msg("failed to get rows affected after compaction")
		return 0, fmt.Errorf("failed to get rows affected after compaction: %w", err)
	}

	return deleted, nil
}

func (r *pendingOperationRepository) CountUnsynced(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countUnsyncedOperations)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "pendingOperationRepository.CountUnsynced").
			Msg("failed to count unsynced operations")
		return 0, fmt.Errorf("failed to count unsynced operations: %w", err)
	}

	return count, nil
}

func scanOperations(rows rowScanner) ([]models.PendingOperation, error) {
	var items []models.PendingOperation

	for rows.Next() {
		var item models.PendingOperation
		var opType string

		if err := rows.Scan(&item.ID, &opType, &item.Data, &item.Timestamp, &item.Synced); err != nil {
			return nil, fmt.Errorf("failed to scan pending operation row: %w", err)
		}

		item.Type = models.OperationType(opType)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending operation rows: %w", err)
	}

	return items, nil
}

// rowScanner is the subset of *sql.Rows the scan helpers need.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}
