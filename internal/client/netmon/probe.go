package netmon

import (
	"context"
	"log/slog"
	"time"
)

// HealthChecker defines the piece of the API client the probe needs
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Probe периодически опрашивает health эндпоинт сервера и превращает
// результат в фид переходов online/offline для Monitor.
type Probe struct {
	checker  HealthChecker
	logger   *slog.Logger
	events   chan bool
	interval time.Duration
}

// NewProbe creates a connectivity probe polling at the given interval
func NewProbe(checker HealthChecker, interval time.Duration, logger *slog.Logger) *Probe {
	return &Probe{
		checker:  checker,
		logger:   logger,
		interval: interval,
		events:   make(chan bool, 1),
	}
}

// Events returns the channel of connectivity states
func (p *Probe) Events() <-chan bool {
	return p.events
}

// Run polls the health endpoint until the context is canceled.
// Состояние публикуется только при изменении, первый опрос публикуется всегда.
func (p *Probe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer close(p.events)

	known := false
	last := false

	check := func() {
		probeCtx, cancel := context.WithTimeout(ctx, p.interval)
		defer cancel()

		online := p.checker.Health(probeCtx) == nil
		if known && online == last {
			return
		}
		known = true
		last = online

		select {
		case p.events <- online:
		case <-ctx.Done():
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
