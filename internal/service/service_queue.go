package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/store"
	"github.com/kirubhel/redcross-client/models"
)

// settleDelay gives a burst of enqueues a moment to land before the
// background pass drains them all in one go.
const settleDelay = 100 * time.Millisecond

type queueService struct {
	queue   store.PendingOperationRepository
	syncer  SyncService
	monitor ConnectivityMonitor
	logger  *logger.Logger

	settle time.Duration
}

func NewQueueService(
	queue store.PendingOperationRepository,
	syncer SyncService,
	monitor ConnectivityMonitor,
	log *logger.Logger,
) QueueService {
	return &queueService{
		queue:   queue,
		syncer:  syncer,
		monitor: monitor,
		logger:  log,
		settle:  settleDelay,
	}
}

// QueueOperation implements QueueService. The write is durable before this
// returns; the sync kick-off is fire-and-forget and its outcome only shows
// up on the connectivity monitor.
func (q *queueService) QueueOperation(ctx context.Context, opType models.OperationType, data json.RawMessage) (int64, error) {
	if opType == "" {
		return 0, ErrEmptyOperationType
	}

	id, err := q.queue.Add(ctx, opType, data)
	if err != nil {
		return 0, err
	}

	q.logger.Info().Str("func", "QueueOperation").
		Int64("operation_id", id).
		Str("type", string(opType)).
		Msg("operation queued")

	if q.monitor.Online() {
		go func() {
			time.Sleep(q.settle)
			// detached from the caller's request lifetime on purpose
			if err := q.syncer.Sync(context.Background()); err != nil {
				q.logger.Error().Err(err).Str("func", "QueueOperation").Msg("post-enqueue sync failed")
			}
		}()
	}

	return id, nil
}

func (q *queueService) Operations(ctx context.Context, filter models.OperationFilter) ([]models.PendingOperation, error) {
	return q.queue.List(ctx, filter)
}

func (q *queueService) UnsyncedCount(ctx context.Context) (int64, error) {
	return q.queue.CountUnsynced(ctx)
}
