package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/docsync/internal/client/docstore"
	"github.com/iudanet/docsync/internal/client/netmon"
	"github.com/iudanet/docsync/internal/client/queue"
	"github.com/iudanet/docsync/internal/client/resolver"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/crdt"
	"github.com/iudanet/docsync/internal/models"
)

// Service — явный контекстный объект, владеющий очередью, хранилищем
// реплик и списком конфликтов. Инжектируется в вызывающий код вместо
// модульного синглтона. Это публичная поверхность движка синхронизации
// для UI и прикладного кода.
type Service struct {
	queue    *queue.Queue
	docs     *docstore.Store
	resolver *resolver.Resolver
	monitor  *netmon.Monitor
	cache    storage.CacheStorage
	logger   *slog.Logger
}

// Status contains a snapshot of the sync engine state
type Status struct {
	IsOnline          bool `json:"is_online"`
	SyncInProgress    bool `json:"sync_in_progress"`
	PendingOperations int  `json:"pending_operations"`
	PendingConflicts  int  `json:"pending_conflicts"`
}

// NewService creates the sync engine facade and registers the reconnect
// trigger: переход offline -> online при непустой очереди запускает drain.
func NewService(q *queue.Queue, docs *docstore.Store, res *resolver.Resolver, monitor *netmon.Monitor, cache storage.CacheStorage, logger *slog.Logger) *Service {
	s := &Service{
		queue:    q,
		docs:     docs,
		resolver: res,
		monitor:  monitor,
		cache:    cache,
		logger:   logger,
	}

	monitor.OnReconnect(s.onReconnect)

	return s
}

// onReconnect запускает drain, если очередь непуста
func (s *Service) onReconnect() {
	ctx := context.Background()

	pending, err := s.queue.Len(ctx)
	if err != nil {
		s.logger.Warn("failed to check queue length on reconnect", "error", err)
		return
	}
	if pending == 0 {
		return
	}

	s.logger.Info("reconnected with pending operations, draining", "pending", pending)

	go func() {
		if err := s.queue.Drain(ctx); err != nil {
			s.logger.Warn("drain after reconnect failed", "error", err)
		}
	}()
}

// EnqueueOperation queues a local mutation for synchronization.
// Заполняет id, timestamp и статус; возвращает id операции.
func (s *Service) EnqueueOperation(ctx context.Context, op *models.SyncOperation) (string, error) {
	if op.EntityID == "" {
		return "", fmt.Errorf("operation entity id is required")
	}
	if op.EntityType == "" {
		op.EntityType = models.EntityDocument
	}

	return s.queue.Enqueue(ctx, op)
}

// GetOrCreateDocument returns the in-memory CRDT replica handle for the
// document. Повторные вызовы возвращают тот же объект.
func (s *Service) GetOrCreateDocument(ctx context.Context, documentID string) (*crdt.Document, error) {
	return s.docs.GetOrCreate(ctx, documentID)
}

// InsertText inserts text into a document through the write-through store.
// Ошибка персистентности не откатывает мутацию в памяти: движок
// деградирует до in-memory работы, сбой только логируется.
func (s *Service) InsertText(ctx context.Context, documentID string, offset int, text string) error {
	if err := s.docs.InsertText(ctx, documentID, offset, text); err != nil {
		s.logger.Warn("document persistence degraded", "document_id", documentID, "error", err)
	}
	return nil
}

// DeleteText removes a text range from a document through the
// write-through store.
func (s *Service) DeleteText(ctx context.Context, documentID string, offset, length int) error {
	if err := s.docs.DeleteText(ctx, documentID, offset, length); err != nil {
		s.logger.Warn("document persistence degraded", "document_id", documentID, "error", err)
	}
	return nil
}

// GetPendingConflicts returns conflicts awaiting manual resolution
func (s *Service) GetPendingConflicts(ctx context.Context) ([]*models.ConflictResolution, error) {
	return s.resolver.PendingConflicts(ctx)
}

// ResolveConflict records and applies a manually chosen resolution
func (s *Service) ResolveConflict(ctx context.Context, id string, res *models.Resolution) error {
	return s.resolver.Resolve(ctx, id, res)
}

// Sync triggers a queue drain explicitly
func (s *Service) Sync(ctx context.Context) error {
	return s.queue.Drain(ctx)
}

// GetSyncStatus returns a snapshot of the engine state. Операции,
// исчерпавшие бюджет повторов, остаются в счетчике — постоянно
// провалившиеся мутации никогда не исчезают молча.
func (s *Service) GetSyncStatus(ctx context.Context) (*Status, error) {
	pendingOps, err := s.queue.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending operations: %w", err)
	}

	conflicts, err := s.resolver.PendingConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending conflicts: %w", err)
	}

	return &Status{
		IsOnline:          s.monitor.IsOnline(),
		SyncInProgress:    s.queue.InFlight(),
		PendingOperations: pendingOps,
		PendingConflicts:  len(conflicts),
	}, nil
}

// CacheDocument stores a document snapshot for offline reads
func (s *Service) CacheDocument(ctx context.Context, doc *models.CachedDocument) error {
	if err := s.cache.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to cache document: %w", err)
	}
	return nil
}

// GetCachedDocument retrieves the last cached snapshot of a document
func (s *Service) GetCachedDocument(ctx context.Context, id string) (*models.CachedDocument, error) {
	return s.cache.GetDocument(ctx, id)
}

// RemoveCachedDocument drops a single document snapshot from the cache
func (s *Service) RemoveCachedDocument(ctx context.Context, id string) error {
	if err := s.cache.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("failed to remove cached document: %w", err)
	}
	return nil
}

// ClearCache removes all cached document snapshots
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.ClearDocuments(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
