package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for durable storage of the offline
// operation queue. Each operation lives in its own slot keyed by its
// Lamport timestamp, so persisting one operation never rewrites the rest.
type QueueStorage interface {
	// SaveOperation stores or updates a queued operation
	SaveOperation(ctx context.Context, op *models.SyncOperation) error

	// GetOperation retrieves a queued operation by ID
	// Returns ErrOperationNotFound if operation doesn't exist
	GetOperation(ctx context.Context, id string) (*models.SyncOperation, error)

	// ListOperations returns all queued operations in enqueue order
	ListOperations(ctx context.Context) ([]*models.SyncOperation, error)

	// DeleteOperation removes an operation from durable storage
	// Used to purge operations that reached SUCCESS
	DeleteOperation(ctx context.Context, id string) error
}
