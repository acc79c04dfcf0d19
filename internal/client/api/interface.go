package api

import (
	"context"

	"github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines interface for the remote sync endpoint client
type ClientAPI interface {
	// SyncDocument sends queued operations and encoded CRDT state for
	// a document, returns applied operations, conflicts and new state
	SyncDocument(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)

	// CreateEntity creates an entity on the server
	CreateEntity(ctx context.Context, req api.EntityRequest) (*api.EntityResponse, error)

	// DeleteEntity deletes an entity on the server
	DeleteEntity(ctx context.Context, entityType, entityID string) (*api.EntityResponse, error)

	// Health checks whether the server is reachable
	Health(ctx context.Context) error
}
