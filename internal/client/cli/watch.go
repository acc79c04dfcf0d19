package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/iudanet/docsync/internal/client/netmon"
)

// RunWatch keeps the connectivity probe and monitor running until
// interrupted. Переходы offline -> online при непустой очереди
// автоматически запускают drain.
func (c *Cli) RunWatch(ctx context.Context, monitor *netmon.Monitor, probe *netmon.Probe) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c.io.Println("Watching connectivity, press Ctrl+C to stop")

	go probe.Run(ctx)
	monitor.Start(ctx)

	c.io.Println("Stopped")

	return nil
}
