package service

import (
	"context"
	"encoding/json"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/store"
	"github.com/kirubhel/redcross-client/models"
)

type cacheService struct {
	cache  store.OfflineDataRepository
	logger *logger.Logger
}

func NewCacheService(cache store.OfflineDataRepository, log *logger.Logger) CacheService {
	return &cacheService{cache: cache, logger: log}
}

func (c *cacheService) SaveRecord(ctx context.Context, entityType string, data json.RawMessage) (int64, error) {
	if entityType == "" {
		return 0, ErrEmptyEntityType
	}

	id, err := c.cache.Save(ctx, entityType, data)
	if err != nil {
		return 0, err
	}

	c.logger.Debug().Str("func", "SaveRecord").
		Int64("record_id", id).
		Str("entity_type", entityType).
		Msg("offline record cached")
	return id, nil
}

func (c *cacheService) Records(ctx context.Context, entityType string) ([]models.OfflineDataRecord, error) {
	if entityType == "" {
		return nil, ErrEmptyEntityType
	}
	return c.cache.GetUnsynced(ctx, entityType)
}
