package cli

import (
	"context"
	"fmt"
)

// RunSync drains the offline operation queue explicitly
func (c *Cli) RunSync(ctx context.Context) error {
	before, err := c.svc.GetSyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	if before.PendingOperations == 0 {
		c.io.Println("Nothing to sync")
		return nil
	}

	c.io.Printf("Syncing %d pending operation(s)...\n", before.PendingOperations)

	if err := c.svc.Sync(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	after, err := c.svc.GetSyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Printf("Done. Remaining operations: %d, pending conflicts: %d\n",
		after.PendingOperations, after.PendingConflicts)

	return nil
}
