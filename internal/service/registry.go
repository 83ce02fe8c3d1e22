package service

import (
	"fmt"
	"sync"

	"github.com/kirubhel/redcross-client/internal/adapter"
	"github.com/kirubhel/redcross-client/models"
)

// HandlerRegistry maps operation types to the handler that replays them.
// Registration happens at wiring time; lookups happen on every sync pass,
// so the map is guarded for concurrent readers.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[models.OperationType]OperationHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[models.OperationType]OperationHandler)}
}

// Register binds a handler to an operation type. Re-registering a type is
// a wiring bug and fails loudly rather than silently replacing a handler.
func (r *HandlerRegistry) Register(opType models.OperationType, handler OperationHandler) error {
	if opType == "" {
		return ErrEmptyOperationType
	}
	if handler == nil {
		return fmt.Errorf("nil handler for operation type %q", opType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[opType]; exists {
		return fmt.Errorf("%w: %q", ErrHandlerRegistered, opType)
	}
	r.handlers[opType] = handler
	return nil
}

// Lookup returns the handler for the operation type, if one is registered.
func (r *HandlerRegistry) Lookup(opType models.OperationType) (OperationHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[opType]
	return handler, ok
}

// Types returns the registered operation types, for diagnostics.
func (r *HandlerRegistry) Types() []models.OperationType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]models.OperationType, 0, len(r.handlers))
	for opType := range r.handlers {
		types = append(types, opType)
	}
	return types
}

// DefaultHandlerRegistry wires every known operation type to its server
// endpoint on the given adapter.
func DefaultHandlerRegistry(serverAdapter adapter.ServerAdapter) *HandlerRegistry {
	registry := NewHandlerRegistry()

	_ = registry.Register(models.OperationRegister, serverAdapter.Register)
	_ = registry.Register(models.OperationCreateActivity, serverAdapter.CreateActivity)
	_ = registry.Register(models.OperationUpdateProfile, serverAdapter.UpdateProfile)
	_ = registry.Register(models.OperationCreatePayment, serverAdapter.CreatePayment)

	return registry
}
