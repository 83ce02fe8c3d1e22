package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestQueueRepo(t *testing.T, db *sql.DB) PendingOperationRepository {
	t.Helper()
	return NewPendingOperationRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var operationColumns = []string{"id", "type", "data", "timestamp", "synced"}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestPendingOperationRepository_Add(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	payload := json.RawMessage(`{"bio":"x"}`)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_operations")).
		WithArgs("updateProfile", []byte(payload), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Add(testContext(), models.OperationUpdateProfile, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingOperationRepository_Add_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	// Storage failures must surface to the caller, never be swallowed.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_operations")).
		WillReturnError(assert.AnError)

	id, err := repo.Add(testContext(), models.OperationRegister, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, id)
}

// ── GetUnsynced ──────────────────────────────────────────────────────────────

func TestPendingOperationRepository_GetUnsynced_InsertionOrder(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	rows := sqlmock.NewRows(operationColumns).
		AddRow(1, "register", []byte(`{"name":"a"}`), 1000, false).
		AddRow(2, "createActivity", []byte(`{"hours":2}`), 2000, false)
	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_operations")).
		WillReturnRows(rows)

	ops, err := repo.GetUnsynced(testContext())
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, int64(1), ops[0].ID)
	assert.Equal(t, models.OperationRegister, ops[0].Type)
	assert.JSONEq(t, `{"name":"a"}`, string(ops[0].Data))
	assert.Equal(t, int64(2), ops[1].ID)
	assert.False(t, ops[1].Synced)
}

func TestPendingOperationRepository_GetUnsynced_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_operations")).
		WillReturnRows(sqlmock.NewRows(operationColumns))

	ops, err := repo.GetUnsynced(testContext())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestPendingOperationRepository_GetUnsynced_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_operations")).
		WillReturnError(assert.AnError)

	ops, err := repo.GetUnsynced(testContext())
	require.Error(t, err)
	assert.Nil(t, ops)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestPendingOperationRepository_List_WithFilters(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	synced := false
	opType := models.OperationCreatePayment

	rows := sqlmock.NewRows(operationColumns).
		AddRow(3, "createPayment", []byte(`{"amount":10}`), 3000, false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, data, timestamp, synced FROM pending_operations WHERE type = $1 AND synced = $2")).
		WithArgs("createPayment", false).
		WillReturnRows(rows)

	ops, err := repo.List(testContext(), models.OperationFilter{Type: &opType, Synced: &synced})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationCreatePayment, ops[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── MarkSynced ───────────────────────────────────────────────────────────────

func TestPendingOperationRepository_MarkSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pending_operations")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSynced(testContext(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingOperationRepository_MarkSynced_MissingRowIsNoOp(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	// Already compacted: zero rows affected must not be an error.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pending_operations")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkSynced(testContext(), 99))
}

func TestPendingOperationRepository_MarkSynced_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pending_operations")).
		WillReturnError(assert.AnError)

	err := repo.MarkSynced(testContext(), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── DeleteSynced ─────────────────────────────────────────────────────────────

func TestPendingOperationRepository_DeleteSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_operations")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteSynced(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestPendingOperationRepository_DeleteSynced_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_operations")).
		WillReturnError(assert.AnError)

	deleted, err := repo.DeleteSynced(testContext())
	require.Error(t, err)
	assert.Zero(t, deleted)
}

// ── CountUnsynced ────────────────────────────────────────────────────────────

func TestPendingOperationRepository_CountUnsynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestQueueRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountUnsynced(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
