package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out cachestorage_mock.go . CacheStorage

// CacheStorage defines interface for the offline document cache.
// Each document occupies its own slot keyed by ID: writing one snapshot
// never rewrites the others, so there is no read-modify-write cycle
// to lose updates under concurrent writers.
type CacheStorage interface {
	// SaveDocument stores or updates a document snapshot
	SaveDocument(ctx context.Context, doc *models.CachedDocument) error

	// GetDocument retrieves a document snapshot by ID
	// Returns ErrDocumentNotFound if document is not cached
	GetDocument(ctx context.Context, id string) (*models.CachedDocument, error)

	// DeleteDocument removes a single document snapshot
	DeleteDocument(ctx context.Context, id string) error

	// ClearDocuments removes all cached document snapshots
	ClearDocuments(ctx context.Context) error
}
