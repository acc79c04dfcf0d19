package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/docsync/internal/models"
)

// RunConflicts lists conflicts awaiting manual resolution
func (c *Cli) RunConflicts(ctx context.Context) error {
	conflicts, err := c.svc.GetPendingConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(conflicts) == 0 {
		c.io.Println("No pending conflicts")
		return nil
	}

	for _, conflict := range conflicts {
		c.io.Printf("%s  %s  document=%s  range=[%d,%d)\n",
			conflict.ID,
			conflict.Type,
			conflict.DocumentID,
			conflict.Position.Offset,
			conflict.Position.Offset+conflict.Position.Length)
		c.io.Printf("  local:  %q\n", conflict.LocalOperation.Content)
		c.io.Printf("  remote: %q\n", conflict.RemoteOperation.Content)
	}

	return nil
}

// RunResolve resolves a pending conflict with the chosen strategy.
// Usage: resolve <id> <strategy> [content]
func (c *Cli) RunResolve(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: resolve <id> <strategy> [content]")
	}

	id := args[0]
	strategy := args[1]
	content := strings.Join(args[2:], " ")

	switch strategy {
	case models.StrategyLastWriteWins, models.StrategyKeepDeletion, models.StrategyMerge, models.StrategyManual:
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	res := &models.Resolution{Strategy: strategy, Content: content}
	if err := c.svc.ResolveConflict(ctx, id, res); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Printf("Conflict %s resolved with strategy %s\n", id, strategy)

	return nil
}
