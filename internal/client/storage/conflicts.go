package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage defines interface for durable storage of conflict
// records awaiting manual resolution.
type ConflictStorage interface {
	// SaveConflict stores or updates a conflict record
	SaveConflict(ctx context.Context, conflict *models.ConflictResolution) error

	// GetConflict retrieves a conflict record by ID
	// Returns ErrConflictNotFound if conflict doesn't exist
	GetConflict(ctx context.Context, id string) (*models.ConflictResolution, error)

	// ListConflicts returns all stored conflict records
	ListConflicts(ctx context.Context) ([]*models.ConflictResolution, error)

	// DeleteConflict removes a conflict record
	// Used after the conflict reaches RESOLVED
	DeleteConflict(ctx context.Context, id string) error
}
