package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kirubhel/redcross-client/internal/mock"
	"github.com/kirubhel/redcross-client/models"
)

func noopHandler(_ context.Context, _ json.RawMessage) error { return nil }

func TestHandlerRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewHandlerRegistry()

	require.NoError(t, registry.Register(models.OperationRegister, noopHandler))

	handler, ok := registry.Lookup(models.OperationRegister)
	assert.True(t, ok)
	assert.NotNil(t, handler)

	_, ok = registry.Lookup(models.OperationCreatePayment)
	assert.False(t, ok)
}

func TestHandlerRegistry_RegisterDuplicate(t *testing.T) {
	registry := NewHandlerRegistry()

	require.NoError(t, registry.Register(models.OperationRegister, noopHandler))

	err := registry.Register(models.OperationRegister, noopHandler)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandlerRegistered)
}

func TestHandlerRegistry_RegisterInvalid(t *testing.T) {
	registry := NewHandlerRegistry()

	assert.ErrorIs(t, registry.Register("", noopHandler), ErrEmptyOperationType)
	assert.Error(t, registry.Register(models.OperationRegister, nil))
}

func TestDefaultHandlerRegistry_WiresAllTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := DefaultHandlerRegistry(mock.NewMockServerAdapter(ctrl))

	wantTypes := []models.OperationType{
		models.OperationRegister,
		models.OperationCreateActivity,
		models.OperationUpdateProfile,
		models.OperationCreatePayment,
	}
	for _, opType := range wantTypes {
		_, ok := registry.Lookup(opType)
		assert.True(t, ok, "missing handler for %q", opType)
	}
	assert.Len(t, registry.Types(), len(wantTypes))
}

func TestDefaultHandlerRegistry_RoutesToAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	registry := DefaultHandlerRegistry(mockAdapter)

	ctx := context.Background()
	payload := json.RawMessage(`{"amount":250}`)

	mockAdapter.EXPECT().CreatePayment(ctx, payload).Return(nil)

	handler, ok := registry.Lookup(models.OperationCreatePayment)
	require.True(t, ok)
	require.NoError(t, handler(ctx, payload))
}
