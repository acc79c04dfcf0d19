package netmon

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Feed defines interface for a connectivity feed emitting online/offline
// transitions. The production implementation is Probe; tests feed the
// channel directly.
type Feed interface {
	// Events returns the channel of connectivity states
	Events() <-chan bool
}

// Monitor наблюдает за фидом связности и держит текущий флаг online.
// При переходе offline -> online вызывает зарегистрированный callback —
// чистый источник триггеров без возвращаемого значения.
type Monitor struct {
	feed        Feed
	logger      *slog.Logger
	onReconnect func()
	online      atomic.Bool
	mu          sync.Mutex
}

// NewMonitor creates a new network status monitor
func NewMonitor(feed Feed, logger *slog.Logger) *Monitor {
	return &Monitor{
		feed:   feed,
		logger: logger,
	}
}

// OnReconnect registers the callback invoked on offline -> online transition
func (m *Monitor) OnReconnect(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnect = fn
}

// IsOnline returns the current connectivity flag
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// Start consumes the feed until the context is canceled
func (m *Monitor) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-m.feed.Events():
			if !ok {
				return
			}
			m.transition(online)
		}
	}
}

func (m *Monitor) transition(online bool) {
	was := m.online.Swap(online)
	if was == online {
		return
	}

	m.logger.Info("connectivity changed", "online", online)

	if !was && online {
		m.mu.Lock()
		fn := m.onReconnect
		m.mu.Unlock()

		if fn != nil {
			fn()
		}
	}
}
