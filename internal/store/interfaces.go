package store

import (
	"context"

	"github.com/kirubhel/redcross-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingOperationRepository is the durable write-side queue. Rows are
// append-only except for the single synced flip; synced rows are the only
// rows DeleteSynced may remove.
type PendingOperationRepository interface {
	// Add persists a new unsynced operation stamped with the current time
	// and returns its auto-assigned id. Storage failures propagate to the
	// caller — they are never swallowed here.
	Add(ctx context.Context, opType models.OperationType, data []byte) (int64, error)

	// GetUnsynced returns every operation with synced = false, in insertion
	// order (timestamp, then id).
	GetUnsynced(ctx context.Context) ([]models.PendingOperation, error)

	// List returns operations matching the filter, in insertion order.
	// A zero filter returns the whole table, synced rows included.
	List(ctx context.Context, filter models.OperationFilter) ([]models.PendingOperation, error)

	// MarkSynced sets synced = true for the given id. Idempotent: a missing
	// row (already compacted) is a no-op, not an error.
	MarkSynced(ctx context.Context, id int64) error

	// DeleteSynced removes every row with synced = true and reports how many
	// were removed. Unsynced rows, including ones inserted concurrently, are
	// never touched.
	DeleteSynced(ctx context.Context) (int64, error)

	// CountUnsynced reports the current queue depth.
	CountUnsynced(ctx context.Context) (int64, error)
}

// OfflineDataRepository caches read snapshots for offline display. Same
// lifecycle shape as the queue, scoped by entity type instead of a global
// scan.
type OfflineDataRepository interface {
	// Save persists a new unsynced cache record and returns its id.
	Save(ctx context.Context, entityType string, data []byte) (int64, error)

	// GetUnsynced returns every unsynced record for the entity type, in
	// insertion order.
	GetUnsynced(ctx context.Context, entityType string) ([]models.OfflineDataRecord, error)

	// MarkSynced sets synced = true for the given id; missing rows are a
	// no-op.
	MarkSynced(ctx context.Context, id int64) error

	// DeleteSynced removes every synced record and reports how many were
	// removed.
	DeleteSynced(ctx context.Context) (int64, error)
}

// SessionRepository persists the single authenticated session so the sync
// engine can replay writes across restarts without a fresh login.
type SessionRepository interface {
	// Save upserts the session row.
	Save(ctx context.Context, session models.Session) error

	// Get returns the saved session, or ErrLocalSessionNotFound when none
	// exists.
	Get(ctx context.Context) (models.Session, error)

	// Delete removes the saved session. Deleting an absent session is a
	// no-op.
	Delete(ctx context.Context) error
}
