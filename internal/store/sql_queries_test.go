// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhel/redcross-client/models"
)

func TestBuildListOperationsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListOperationsQuery(models.OperationFilter{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, type, data, timestamp, synced FROM pending_operations ORDER BY timestamp, id",
		query)
	assert.Empty(t, args)
}

func TestBuildListOperationsQuery_TypeFilter(t *testing.T) {
	opType := models.OperationRegister

	query, args, err := buildListOperationsQuery(models.OperationFilter{Type: &opType})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, type, data, timestamp, synced FROM pending_operations WHERE type = $1 ORDER BY timestamp, id",
		query)
	assert.Equal(t, []any{"register"}, args)
}

func TestBuildListOperationsQuery_SyncedFilter(t *testing.T) {
	synced := true

	query, args, err := buildListOperationsQuery(models.OperationFilter{Synced: &synced})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, type, data, timestamp, synced FROM pending_operations WHERE synced = $1 ORDER BY timestamp, id",
		query)
	assert.Equal(t, []any{true}, args)
}

func TestBuildListOperationsQuery_BothFilters(t *testing.T) {
	opType := models.OperationCreateActivity
	synced := false

	query, args, err := buildListOperationsQuery(models.OperationFilter{Type: &opType, Synced: &synced})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, type, data, timestamp, synced FROM pending_operations WHERE type = $1 AND synced = $2 ORDER BY timestamp, id",
		query)
	assert.Equal(t, []any{"createActivity", false}, args)
}
