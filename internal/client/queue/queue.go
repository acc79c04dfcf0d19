package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/crdt"
	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out syncer_mock.go . Syncer

// Syncer defines the coordinator side the queue drains into
type Syncer interface {
	// SyncOperation sends one operation to the remote authority.
	// Sets the operation status to SUCCESS or ERROR before returning.
	SyncOperation(ctx context.Context, op *models.SyncOperation) error
}

// Connectivity defines the piece of the network monitor the queue needs
type Connectivity interface {
	IsOnline() bool
}

// Queue представляет durable упорядоченную очередь отложенных мутаций.
// Операции обрабатываются строго последовательно, по одной: CRDT
// состояние документа никогда не мержится из двух запросов в полете,
// пропускная способность принесена в жертву корректности без
// пер-документных блокировок.
type Queue struct {
	storage    storage.QueueStorage
	syncer     Syncer
	conn       Connectivity
	clock      *crdt.LamportClock
	logger     *slog.Logger
	maxRetries int
	draining   atomic.Bool
}

// NewQueue creates a new operation queue
func NewQueue(st storage.QueueStorage, syncer Syncer, conn Connectivity, clock *crdt.LamportClock, maxRetries int, logger *slog.Logger) *Queue {
	return &Queue{
		storage:    st,
		syncer:     syncer,
		conn:       conn,
		clock:      clock,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Load rehydrates the Lamport clock from the persisted queue. Ключи
// операций в хранилище строятся из timestamp'а, поэтому без Observe
// свежие часы после рестарта выдали бы уже занятые значения и новые
// операции молча перезаписали бы сохраненные.
func (q *Queue) Load(ctx context.Context) error {
	ops, err := q.storage.ListOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	for _, op := range ops {
		q.clock.Observe(op.Timestamp)
	}

	q.logger.Debug("queue loaded",
		"operations", len(ops),
		"clock", q.clock.Current())

	return nil
}

// Enqueue assigns id, timestamp and PENDING status to the operation,
// persists it, and — if online and no drain is in flight — requests an
// immediate drain. Returns the operation id.
func (q *Queue) Enqueue(ctx context.Context, op *models.SyncOperation) (string, error) {
	op.ID = uuid.New().String()
	op.Timestamp = q.clock.Tick()
	op.Status = models.StatusPending
	op.RetryCount = 0
	op.Error = ""
	op.EnqueuedAt = time.Now()

	if err := q.storage.SaveOperation(ctx, op); err != nil {
		return "", fmt.Errorf("failed to persist operation: %w", err)
	}

	q.logger.Debug("operation enqueued",
		"operation_id", op.ID,
		"type", op.Type,
		"entity_id", op.EntityID)

	if q.conn != nil && q.conn.IsOnline() && !q.draining.Load() {
		go func() {
			if err := q.Drain(context.WithoutCancel(ctx)); err != nil {
				q.logger.Warn("drain after enqueue failed", "error", err)
			}
		}()
	}

	return op.ID, nil
}

// Drain processes every PENDING and retryable ERROR operation
// sequentially in queue order. A second Drain arriving while one is
// active is dropped, not queued. Перед освобождением guard'а drain
// повторяет проход, пока в очереди появляются новые PENDING операции,
// чтобы операции, добавленные во время прохода, не ждали внешнего
// триггера.
func (q *Queue) Drain(ctx context.Context) error {
	if !q.draining.CompareAndSwap(false, true) {
		q.logger.Debug("drain already in progress, trigger dropped")
		return nil
	}
	defer q.draining.Store(false)

	for {
		if err := q.drainPass(ctx); err != nil {
			return err
		}

		more, err := q.hasPending(ctx)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// drainPass выполняет один последовательный проход по очереди
func (q *Queue) drainPass(ctx context.Context) error {
	ops, err := q.storage.ListOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !q.eligible(op) {
			continue
		}

		syncErr := q.syncer.SyncOperation(ctx, op)
		if syncErr == nil {
			// SUCCESS операции вычищаются из очереди
			if err := q.storage.DeleteOperation(ctx, op.ID); err != nil {
				q.logger.Warn("failed to purge synced operation",
					"operation_id", op.ID,
					"error", err)
			}
			continue
		}

		op.RetryCount++
		if clientapi.IsTerminal(syncErr) {
			// Повторять бессмысленно: исчерпываем бюджет, операция
			// остается видимой со статусом ERROR
			op.RetryCount = q.maxRetries
			q.logger.Error("operation failed permanently",
				"operation_id", op.ID,
				"error", syncErr)
		} else {
			q.logger.Warn("operation failed, will retry next drain",
				"operation_id", op.ID,
				"retry_count", op.RetryCount,
				"error", syncErr)
		}

		if err := q.storage.SaveOperation(ctx, op); err != nil {
			q.logger.Warn("failed to persist operation status",
				"operation_id", op.ID,
				"error", err)
		}
	}

	return nil
}

// eligible: PENDING и ERROR операции с неисчерпанным бюджетом повторов
func (q *Queue) eligible(op *models.SyncOperation) bool {
	if op.Status != models.StatusPending && op.Status != models.StatusError {
		return false
	}
	return op.RetryCount < q.maxRetries
}

// hasPending reports whether any operation still awaits its first attempt
func (q *Queue) hasPending(ctx context.Context) (bool, error) {
	ops, err := q.storage.ListOperations(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load queue: %w", err)
	}

	for _, op := range ops {
		if op.Status == models.StatusPending && op.RetryCount < q.maxRetries {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of operations retained in the queue,
// including permanently failed ones — they are never silently dropped.
func (q *Queue) Len(ctx context.Context) (int, error) {
	ops, err := q.storage.ListOperations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load queue: %w", err)
	}
	return len(ops), nil
}

// Operations returns a snapshot of the queue in enqueue order
func (q *Queue) Operations(ctx context.Context) ([]*models.SyncOperation, error) {
	return q.storage.ListOperations(ctx)
}

// InFlight reports whether a drain pass is currently running
func (q *Queue) InFlight() bool {
	return q.draining.Load()
}
