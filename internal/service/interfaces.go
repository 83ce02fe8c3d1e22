// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

// Package service carries the offline-first core of the client: the durable
// operation queue, the connectivity state machine, and the sync engine that
// replays queued writes against the remote server once it is reachable.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kirubhel/redcross-client/models"
)

// OperationHandler replays a single queued payload against the remote
// server. It returns nil once the server has accepted the write.
type OperationHandler func(ctx context.Context, data json.RawMessage) error

// QueueService is the producer side of the offline queue. Callers persist
// their write first and never wait for the network.
type QueueService interface {
	// QueueOperation durably stores the operation and returns its queue id.
	// When the client is online a sync pass is kicked off in the background
	// shortly after; the caller neither waits for it nor sees its outcome.
	QueueOperation(ctx context.Context, opType models.OperationType, data json.RawMessage) (int64, error)

	// Operations returns queued operations matching the filter, oldest first.
	Operations(ctx context.Context, filter models.OperationFilter) ([]models.PendingOperation, error)

	// UnsyncedCount reports how many operations still await replay.
	UnsyncedCount(ctx context.Context) (int64, error)
}

// CacheService stores read snapshots so the UI keeps rendering data while
// the server is unreachable.
type CacheService interface {
	// SaveRecord caches one snapshot under the given entity type.
	SaveRecord(ctx context.Context, entityType string, data json.RawMessage) (int64, error)

	// Records returns the cached snapshots for the entity type, oldest first.
	Records(ctx context.Context, entityType string) ([]models.OfflineDataRecord, error)
}

// SyncService drains the pending queue against the remote server.
type SyncService interface {
	// Sync runs one full drain pass: load unsynced operations in insertion
	// order, replay each through its registered handler, mark successes
	// immediately, and compact fully-synced rows at the end. A pass that is
	// already running, or that is gated off by connectivity or a missing
	// token, returns nil without touching anything. Only storage failures
	// surface as errors; per-operation replay failures leave the operation
	// queued for the next pass.
	Sync(ctx context.Context) error
}

// ConnectivityMonitor tracks whether the server is reachable and what the
// sync engine is currently doing, as one snapshot for the UI.
type ConnectivityMonitor interface {
	// Online reports the last observed connectivity.
	Online() bool

	// SetOnline records an observation. An offline-to-online transition
	// fires the callback registered with OnOnline.
	SetOnline(online bool)

	// OnOnline registers the hook fired when connectivity returns. Only one
	// hook is kept; registering replaces the previous one.
	OnOnline(fn func())

	// BeginSync moves the sync status to in-progress.
	BeginSync()

	// FinishSync records the outcome of a pass. The resulting success or
	// error status decays back to idle after a short hold so the UI gets a
	// visible settle window.
	FinishSync(err error)

	// Snapshot returns the current connectivity and sync status pair.
	Snapshot() models.StatusSnapshot

	// Close releases the decay timer. The monitor must not be used after.
	Close()
}

// SyncJob is the periodic background worker that keeps the queue drained
// even when no new operations arrive.
type SyncJob interface {
	// Start launches the background goroutine syncing every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// AuthService owns the session lifecycle: the remote login, the locally
// persisted token, and its restoration across restarts.
type AuthService interface {
	// Login authenticates against the server, arms the adapter with the
	// returned token, and persists the session locally.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession loads the persisted session and re-arms the adapter.
	// Returns store.ErrLocalSessionNotFound when no session is saved and
	// ErrTokenExpired when the saved token is past its expiry.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout drops the persisted session and clears the adapter token.
	Logout(ctx context.Context) error
}
