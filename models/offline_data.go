package models

import "encoding/json"

// OfflineDataRecord is a cached read snapshot kept for offline display.
// It shares the lifecycle shape of PendingOperation (synced flips once,
// synced rows are compactable) but represents data fetched from the server,
// not a write to replay.
type OfflineDataRecord struct {
	ID int64 `json:"id"`
	// EntityType is a free-form tag ("activities", "events", ...) scoping
	// reads; the cache is always queried per entity type.
	EntityType string          `json:"entityType"`
	Data       json.RawMessage `json:"data"`
	// Timestamp is the caching time in milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`
	Synced    bool  `json:"synced"`
}
