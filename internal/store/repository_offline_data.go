package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

type offlineDataRepository struct {
	*DB
	logger *logger.Logger
}

func NewOfflineDataRepository(db *DB, logger *logger.Logger) OfflineDataRepository {
	return &offlineDataRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *offlineDataRepository) Save(ctx context.Context, entityType string, data []byte) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertOfflineData,
		entityType,
		data,
		time.Now().UnixMilli(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.Save").
			Str("entity_type", entityType).
			Msg("failed to insert offline data record")
		return 0, fmt.Errorf("failed to insert offline data (entity_type=%s): %w", entityType, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.Save").
			Str("entity_type", entityType).
			Msg("failed to read inserted record id")
		return 0, fmt.Errorf("failed to read inserted record id: %w", err)
	}

	return id, nil
}

func (r *offlineDataRepository) GetUnsynced(ctx context.Context, entityType string) ([]models.OfflineDataRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getUnsyncedOfflineData, entityType)
	if err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.GetUnsynced").
			Str("entity_type", entityType).
			Msg("failed to query offline data records")
		return nil, fmt.Errorf("failed to query offline data (entity_type=%s): %w", entityType, err)
	}
	defer rows.Close()

	var items []models.OfflineDataRecord

	for rows.Next() {
		var item models.OfflineDataRecord

		if err := rows.Scan(&item.ID, &item.EntityType, &item.Data, &item.Timestamp, &item.Synced); err != nil {
			log.Err(err).
				Str("func", "offlineDataRepository.GetUnsynced").
				Str("entity_type", entityType).
				Msg("failed to scan offline data row")
			return nil, fmt.Errorf("failed to scan offline data row: %w", err)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "offlineDataRepository.GetUnsynced").
			Str("entity_type", entityType).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating offline data rows: %w", rowsErr)
	}

	return items, nil
}

func (r *offlineDataRepository) MarkSynced(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, markOfflineDataSynced, id); err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.MarkSynced").
			Int64("record_id", id).
			Msg("failed to mark offline data synced")
		return fmt.Errorf("failed to mark offline data synced (id=%d): %w", id, err)
	}

	return nil
}

func (r *offlineDataRepository) DeleteSynced(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteSyncedOfflineData)
	if err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.DeleteSynced").
			Msg("failed to delete synced offline data")
		return 0, fmt.Errorf("failed to delete synced offline data: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "offlineDataRepository.DeleteSynced").
			Msg("failed to get rows affected after compaction")
		return 0, fmt.Errorf("failed to get rows affected after compaction: %w", err)
	}

	return deleted, nil
}
