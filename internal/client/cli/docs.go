package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// RunCat prints the current content of a document's local replica
func (c *Cli) RunCat(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cat <doc-id>")
	}

	doc, err := c.svc.GetOrCreateDocument(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	c.io.Println(doc.Text())

	return nil
}

// RunInsert inserts text into a document and queues the change for sync.
// Usage: insert <doc-id> <offset> <text>
func (c *Cli) RunInsert(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: insert <doc-id> <offset> <text>")
	}

	documentID := args[0]
	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}
	text := strings.Join(args[2:], " ")

	if err := c.svc.InsertText(ctx, documentID, offset, text); err != nil {
		return fmt.Errorf("failed to insert text: %w", err)
	}

	if err := c.enqueueContentUpdate(ctx, documentID); err != nil {
		return err
	}

	return nil
}

// RunRemove removes a text range from a document and queues the change.
// Usage: remove <doc-id> <offset> <length>
func (c *Cli) RunRemove(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: remove <doc-id> <offset> <length>")
	}

	documentID := args[0]
	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}
	length, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", args[2], err)
	}

	if err := c.svc.DeleteText(ctx, documentID, offset, length); err != nil {
		return fmt.Errorf("failed to remove text: %w", err)
	}

	if err := c.enqueueContentUpdate(ctx, documentID); err != nil {
		return err
	}

	return nil
}

// enqueueContentUpdate ставит UPDATE операцию документа в очередь и
// обновляет офлайн снимок
func (c *Cli) enqueueContentUpdate(ctx context.Context, documentID string) error {
	id, err := c.svc.EnqueueOperation(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   documentID,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue update: %w", err)
	}

	doc, err := c.svc.GetOrCreateDocument(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	snapshot := &models.CachedDocument{
		ID:        documentID,
		Content:   doc.Text(),
		UpdatedAt: time.Now(),
	}
	if cached, err := c.svc.GetCachedDocument(ctx, documentID); err == nil {
		snapshot.Title = cached.Title
		snapshot.Version = cached.Version + 1
	}

	if err := c.svc.CacheDocument(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to update cached snapshot: %w", err)
	}

	c.io.Printf("Queued operation %s\n", id)

	return nil
}

// RunCacheGet prints the cached offline snapshot of a document
func (c *Cli) RunCacheGet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cache-get <doc-id>")
	}

	doc, err := c.svc.GetCachedDocument(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			c.io.Println("Document is not cached")
			return nil
		}
		return fmt.Errorf("failed to get cached document: %w", err)
	}

	c.io.Printf("ID:      %s\n", doc.ID)
	c.io.Printf("Title:   %s\n", doc.Title)
	c.io.Printf("Version: %d\n", doc.Version)
	c.io.Printf("Updated: %s\n", doc.UpdatedAt.Format(time.RFC3339))
	c.io.Println(doc.Content)

	return nil
}

// RunCacheRemove drops a single document from the offline cache
func (c *Cli) RunCacheRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cache-rm <doc-id>")
	}

	if err := c.svc.RemoveCachedDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to remove cached document: %w", err)
	}

	c.io.Printf("Removed %s from cache\n", args[0])

	return nil
}

// RunCacheClear clears the offline document cache
func (c *Cli) RunCacheClear(ctx context.Context) error {
	if err := c.svc.ClearCache(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	c.io.Println("Cache cleared")

	return nil
}
