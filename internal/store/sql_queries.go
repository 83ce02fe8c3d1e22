// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kirubhel/redcross-client/models"
)

const (
	insertPendingOperation = `
		INSERT INTO pending_operations (type, data, timestamp, synced)
		VALUES ($1, $2, $3, false);`

	getUnsyncedOperations = `
		SELECT id, type, data, timestamp, synced
		FROM pending_operations
		WHERE synced = false
		ORDER BY timestamp, id;`

	markOperationSynced = `
		UPDATE pending_operations
		SET synced = true
		WHERE id = $1;`

	deleteSyncedOperations = `
		DELETE FROM pending_operations
		WHERE synced = true;`

	countUnsyncedOperations = `
		SELECT COUNT(*)
		FROM pending_operations
		WHERE synced = false;`

	insertOfflineData = `
		INSERT INTO offline_data (entity_type, data, timestamp, synced)
		VALUES ($1, $2, $3, false);`

	getUnsyncedOfflineData = `
		SELECT id, entity_type, data, timestamp, synced
		FROM offline_data
		WHERE entity_type = $1 AND synced = false
		ORDER BY timestamp, id;`

	markOfflineDataSynced = `
		UPDATE offline_data
		SET synced = true
		WHERE id = $1;`

	deleteSyncedOfflineData = `
		DELETE FROM offline_data
		WHERE synced = true;`

	saveSession = `
		INSERT INTO sessions (id, token, user_id, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			user_id  = excluded.user_id,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT token, user_id, saved_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM sessions;`
)

// buildListOperationsQuery assembles the filtered queue listing. Filters are
// optional, so the query is built dynamically with squirrel instead of
// keeping one constant per filter combination.
func buildListOperationsQuery(filter models.OperationFilter) (string, []any, error) {
	qb := sq.Select("id", "type", "data", "timestamp", "synced").
		From("pending_operations").
		PlaceholderFormat(sq.Dollar)

	if filter.Type != nil {
		qb = qb.Where(sq.Eq{"type": string(*filter.Type)})
	}
	if filter.Synced != nil {
		qb = qb.Where(sq.Eq{"synced": *filter.Synced})
	}

	return qb.OrderBy("timestamp", "id").ToSql()
}
