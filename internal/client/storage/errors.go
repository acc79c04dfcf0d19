package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that queued operation was not found
	ErrOperationNotFound = errors.New("operation not found")

	// ErrConflictNotFound indicates that conflict record was not found
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrStateNotFound indicates that no persisted CRDT state exists for document
	ErrStateNotFound = errors.New("document state not found")

	// ErrDocumentNotFound indicates that cached document was not found
	ErrDocumentNotFound = errors.New("cached document not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
