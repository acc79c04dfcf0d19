package cli

import (
	"context"
	"fmt"
)

// RunStatus prints the current sync engine status
func (c *Cli) RunStatus(ctx context.Context) error {
	status, err := c.svc.GetSyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	online := "offline"
	if status.IsOnline {
		online = "online"
	}

	c.io.Printf("Connectivity:       %s\n", online)
	c.io.Printf("Pending operations: %d\n", status.PendingOperations)
	c.io.Printf("Pending conflicts:  %d\n", status.PendingConflicts)
	c.io.Printf("Sync in progress:   %t\n", status.SyncInProgress)

	return nil
}
