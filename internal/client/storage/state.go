package storage

import "context"

//go:generate moq -out statestorage_mock.go . StateStorage

// StateStorage defines interface for persisting encoded CRDT replica
// state per document. The byte sequence is opaque to the storage layer.
type StateStorage interface {
	// SaveState persists the encoded replica state for a document
	SaveState(ctx context.Context, documentID string, data []byte) error

	// GetState retrieves the last persisted replica state for a document
	// Returns ErrStateNotFound if no state has been persisted yet
	GetState(ctx context.Context, documentID string) ([]byte, error)
}
