// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kirubhel/redcross-client/internal/adapter"
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/store"
)

type syncService struct {
	queue    store.PendingOperationRepository
	adapter  adapter.ServerAdapter
	registry *HandlerRegistry
	monitor  ConnectivityMonitor
	logger   *logger.Logger

	// running guards against overlapping passes from the timer, the
	// post-enqueue trigger, and the online transition firing together
	running atomic.Bool
}

func NewSyncService(
	queue store.PendingOperationRepository,
	serverAdapter adapter.ServerAdapter,
	registry *HandlerRegistry,
	monitor ConnectivityMonitor,
	log *logger.Logger,
) SyncService {
	return &syncService{
		queue:    queue,
		adapter:  serverAdapter,
		registry: registry,
		monitor:  monitor,
		logger:   log,
	}
}

// Sync implements SyncService. One pass drains the queue in insertion
// order. Successes are marked durably one by one, so a crash mid-pass
// never replays what the server already accepted; failures stay queued
// and do not block the operations behind them.
func (s *syncService) Sync(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	if !s.monitor.Online() {
		return nil
	}
	if s.adapter.Token() == "" {
		s.logger.Debug().Str("func", "Sync").Msg("no auth token, sync pass skipped")
		return nil
	}

	passID := uuid.NewString()
	log := &logger.Logger{Logger: s.logger.With().Str("sync_pass", passID).Logger()}

	operations, err := s.queue.GetUnsynced(ctx)
	if err != nil {
		s.monitor.FinishSync(err)
		return fmt.Errorf("load unsynced operations: %w", err)
	}

	// an empty queue never leaves idle: ticks with nothing to do are silent
	if len(operations) == 0 {
		return nil
	}

	s.monitor.BeginSync()
	log.Info().Str("func", "Sync").Int("pending", len(operations)).Msg("sync pass started")

	var failed int
	for _, op := range operations {
		if ctx.Err() != nil {
			s.monitor.FinishSync(ctx.Err())
			return fmt.Errorf("sync pass interrupted: %w", ctx.Err())
		}

		handler, ok := s.registry.Lookup(op.Type)
		if !ok {
			// stays queued until a build that knows the type picks it up
			log.Warn().Str("func", "Sync").
				Int64("operation_id", op.ID).
				Str("type", string(op.Type)).
				Msg("no handler for operation type, leaving queued")
			failed++
			continue
		}

		if err = handler(ctx, op.Data); err != nil {
			log.Error().Err(err).Str("func", "Sync").
				Int64("operation_id", op.ID).
				Str("type", string(op.Type)).
				Msg("operation replay failed, will retry next pass")
			failed++
			continue
		}

		if err = s.queue.MarkSynced(ctx, op.ID); err != nil {
			s.monitor.FinishSync(err)
			return fmt.Errorf("mark operation %d synced: %w", op.ID, err)
		}
	}

	removed, err := s.queue.DeleteSynced(ctx)
	if err != nil {
		s.monitor.FinishSync(err)
		return fmt.Errorf("compact synced operations: %w", err)
	}

	log.Info().Str("func", "Sync").
		Int("replayed", len(operations)-failed).
		Int("failed", failed).
		Int64("compacted", removed).
		Msg("sync pass finished")

	if failed > 0 {
		s.monitor.FinishSync(fmt.Errorf("%d of %d operations failed", failed, len(operations)))
	} else {
		s.monitor.FinishSync(nil)
	}
	return nil
}
