package crdt

import (
	"sync"

	"github.com/google/uuid"
)

// LamportClock представляет логические часы Лампорта для упорядочивания
// локальных и удаленных событий без синхронизации физического времени.
type LamportClock struct {
	nodeID  string
	counter int64
	mu      sync.Mutex
}

// NewLamportClock создает новые логические часы с уникальным node ID (UUID).
func NewLamportClock() *LamportClock {
	return &LamportClock{nodeID: uuid.New().String()}
}

// NewLamportClockWithNodeID создает часы с заданным node ID.
// Используется в тестах и при восстановлении состояния реплики.
func NewLamportClockWithNodeID(nodeID string) *LamportClock {
	return &LamportClock{nodeID: nodeID}
}

// Tick увеличивает счетчик и возвращает новый timestamp.
// Вызывается при создании нового локального события.
func (lc *LamportClock) Tick() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter++
	return lc.counter
}

// Observe обновляет счетчик по увиденному удаленному timestamp:
// counter = max(counter, remote). Следующий Tick даст значение больше
// любого уже наблюдавшегося события.
func (lc *LamportClock) Observe(remote int64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if remote > lc.counter {
		lc.counter = remote
	}
}

// Current возвращает текущее значение счетчика без изменения.
func (lc *LamportClock) Current() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.counter
}

// NodeID возвращает идентификатор узла.
func (lc *LamportClock) NodeID() string {
	return lc.nodeID
}
