package service

import "errors"

var (
	ErrTokenExpired       = errors.New("saved token is expired")
	ErrHandlerRegistered  = errors.New("handler already registered for operation type")
	ErrNoHandler          = errors.New("no handler registered for operation type")
	ErrEmptyOperationType = errors.New("operation type is empty")
	ErrEmptyEntityType    = errors.New("entity type is empty")
)
