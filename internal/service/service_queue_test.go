package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/mock"
	"github.com/kirubhel/redcross-client/models"
)

// stubSyncer counts Sync calls without mockgen: the real engine is already
// covered by its own tests.
type stubSyncer struct {
	calls atomic.Int64
	err   error
}

func (s *stubSyncer) Sync(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func newTestQueueSvc(t *testing.T, ctrl *gomock.Controller) (*queueService, *mock.MockPendingOperationRepository, *stubSyncer, *connectivityMonitor) {
	t.Helper()
	mockQueue := mock.NewMockPendingOperationRepository(ctrl)
	syncer := &stubSyncer{}
	monitor := newTestMonitor(t, time.Minute)

	svc := NewQueueService(mockQueue, syncer, monitor, logger.Nop()).(*queueService)
	svc.settle = time.Millisecond
	return svc, mockQueue, syncer, monitor
}

func TestQueueOperation_PersistsThenSyncs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, syncer, _ := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	payload := json.RawMessage(`{"title":"blood drive"}`)

	mockQueue.EXPECT().Add(ctx, models.OperationCreateActivity, []byte(payload)).Return(int64(7), nil)

	id, err := svc.QueueOperation(ctx, models.OperationCreateActivity, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	require.Eventually(t, func() bool {
		return syncer.calls.Load() == 1
	}, time.Second, 5*time.Millisecond, "post-enqueue sync never fired")
}

func TestQueueOperation_OfflineSkipsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, syncer, monitor := newTestQueueSvc(t, ctrl)
	monitor.SetOnline(false)
	ctx := context.Background()

	mockQueue.EXPECT().Add(ctx, models.OperationCreatePayment, gomock.Any()).Return(int64(1), nil)

	id, err := svc.QueueOperation(ctx, models.OperationCreatePayment, json.RawMessage(`{"amount":50}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, syncer.calls.Load(), "sync must not fire while offline")
}

func TestQueueOperation_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, syncer, _ := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockQueue.EXPECT().Add(ctx, models.OperationRegister, gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := svc.QueueOperation(ctx, models.OperationRegister, json.RawMessage(`{}`))
	require.Error(t, err)

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, syncer.calls.Load(), "sync must not fire when persist failed")
}

func TestQueueOperation_EmptyType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestQueueSvc(t, ctrl)

	_, err := svc.QueueOperation(context.Background(), "", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrEmptyOperationType)
}

func TestQueueService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueue, _, _ := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	opType := models.OperationRegister
	filter := models.OperationFilter{Type: &opType}
	want := []models.PendingOperation{{ID: 1, Type: opType}}

	mockQueue.EXPECT().List(ctx, filter).Return(want, nil)
	mockQueue.EXPECT().CountUnsynced(ctx).Return(int64(1), nil)

	got, err := svc.Operations(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	count, err := svc.UnsyncedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
