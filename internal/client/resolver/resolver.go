package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out documents_mock.go . Documents

// Documents defines the piece of the document store the resolver needs
// to apply resolutions against CRDT replicas
type Documents interface {
	InsertText(ctx context.Context, documentID string, offset int, text string) error
	DeleteText(ctx context.Context, documentID string, offset, length int) error
}

// Resolver классифицирует конфликты, возвращенные сервером, и разрешает
// их автоматически либо откладывает для ручного решения.
// Жизненный цикл: DETECTED -> {AUTO_RESOLVED | PENDING_MANUAL} -> RESOLVED.
type Resolver struct {
	docs      Documents
	conflicts storage.ConflictStorage
	logger    *slog.Logger
}

// NewResolver creates a new conflict resolver
func NewResolver(docs Documents, conflicts storage.ConflictStorage, logger *slog.Logger) *Resolver {
	return &Resolver{
		docs:      docs,
		conflicts: conflicts,
		logger:    logger,
	}
}

// Classify determines the resolution for a conflict. Deterministic:
// identical input always yields the identical decision.
//   - INSERT: last-write-wins, содержимое удаленной стороны — сервер
//     является авторитетной точкой упорядочивания, локальная вставка
//     отбрасывается.
//   - DELETE: keep-deletion — удаление применяется всегда, независимо
//     от автора; контент, убранный коллаборатором, не воскрешается.
//   - EDIT: слияние конкатенацией, только когда обе стороны непусты,
//     различны и не перекрываются; иначе эскалация в ручное разрешение.
//
// Возвращает (resolution, true) для автоматического разрешения или
// (nil, false) для эскалации в PENDING_MANUAL.
func (r *Resolver) Classify(conflict *models.ConflictResolution) (*models.Resolution, bool) {
	switch conflict.Type {
	case models.ConflictInsert:
		return &models.Resolution{
			Strategy: models.StrategyLastWriteWins,
			Content:  conflict.RemoteOperation.Content,
		}, true

	case models.ConflictDelete:
		return &models.Resolution{
			Strategy: models.StrategyKeepDeletion,
			Content:  "",
		}, true

	case models.ConflictEdit:
		local := conflict.LocalOperation.Content
		remote := conflict.RemoteOperation.Content
		if mergeable(local, remote) {
			return &models.Resolution{
				Strategy: models.StrategyMerge,
				Content:  local + remote,
			}, true
		}
		return nil, false

	default:
		return nil, false
	}
}

// mergeable: обе стороны непусты, различны и ни одна не содержит другую
func mergeable(local, remote string) bool {
	if local == "" || remote == "" {
		return false
	}
	if local == remote {
		return false
	}
	return !strings.Contains(local, remote) && !strings.Contains(remote, local)
}

// HandleRemoteConflicts converts conflicts reported by the sync endpoint
// into conflict records, auto-resolving what it can and persisting the
// rest for manual resolution. DocumentID сохраняется в записи сразу,
// чтобы ручное разрешение позже смогло примениться к реплике.
func (r *Resolver) HandleRemoteConflicts(ctx context.Context, documentID string, conflicts []api.Conflict) error {
	for i := range conflicts {
		record := newConflictRecord(documentID, &conflicts[i])

		resolution, auto := r.Classify(record)
		if !auto {
			record.State = models.ConflictPendingManual
			if err := r.conflicts.SaveConflict(ctx, record); err != nil {
				return fmt.Errorf("failed to persist pending conflict: %w", err)
			}

			r.logger.Info("conflict needs manual resolution",
				"conflict_id", record.ID,
				"document_id", documentID,
				"type", record.Type)
			continue
		}

		if err := r.ApplyResolution(ctx, documentID, record.Position, resolution); err != nil {
			return fmt.Errorf("failed to apply auto resolution: %w", err)
		}

		record.AutoResolved = true
		record.Resolution = resolution
		record.State = models.ConflictAutoResolved

		r.logger.Info("conflict auto-resolved",
			"conflict_id", record.ID,
			"document_id", documentID,
			"strategy", resolution.Strategy)
	}

	return nil
}

// ApplyResolution performs the resolution against the document's CRDT
// text: deletes the recorded range [offset, offset+length), then inserts
// the resolved content at the offset.
func (r *Resolver) ApplyResolution(ctx context.Context, documentID string, pos models.Position, res *models.Resolution) error {
	if pos.Length > 0 {
		if err := r.docs.DeleteText(ctx, documentID, pos.Offset, pos.Length); err != nil {
			return fmt.Errorf("failed to delete conflicted range: %w", err)
		}
	}

	if res.Content != "" {
		if err := r.docs.InsertText(ctx, documentID, pos.Offset, res.Content); err != nil {
			return fmt.Errorf("failed to insert resolved content: %w", err)
		}
	}

	return nil
}

// PendingConflicts returns all conflicts awaiting a manual decision
func (r *Resolver) PendingConflicts(ctx context.Context) ([]*models.ConflictResolution, error) {
	all, err := r.conflicts.ListConflicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	pending := make([]*models.ConflictResolution, 0, len(all))
	for _, c := range all {
		if c.IsPending() {
			pending = append(pending, c)
		}
	}

	return pending, nil
}

// Resolve applies the manually chosen resolution for a pending conflict
// to the document's CRDT replica and prunes the record from durable
// storage: достигнув RESOLVED, запись больше не нужна и не должна
// бесконечно копиться в bucket'е.
func (r *Resolver) Resolve(ctx context.Context, id string, res *models.Resolution) error {
	record, err := r.conflicts.GetConflict(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load conflict: %w", err)
	}

	if !record.IsPending() {
		return fmt.Errorf("conflict %s is already resolved", id)
	}

	if err := r.ApplyResolution(ctx, record.DocumentID, record.Position, res); err != nil {
		return err
	}

	if err := r.conflicts.DeleteConflict(ctx, id); err != nil {
		return fmt.Errorf("failed to prune resolved conflict: %w", err)
	}

	r.logger.Info("conflict resolved manually",
		"conflict_id", id,
		"document_id", record.DocumentID,
		"strategy", res.Strategy)

	return nil
}

// newConflictRecord строит запись конфликта из ответа сервера
func newConflictRecord(documentID string, c *api.Conflict) *models.ConflictResolution {
	id := c.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &models.ConflictResolution{
		ID:         id,
		DocumentID: documentID,
		Type:       models.ConflictType(c.Type),
		State:      models.ConflictDetected,
		DetectedAt: time.Now(),
		Position: models.Position{
			Index:  c.Position.Index,
			Offset: c.Position.Offset,
			Length: c.Position.Length,
			Depth:  c.Position.Depth,
		},
		LocalOperation: models.ConflictOperation{
			Kind:    c.LocalOperation.Kind,
			Content: c.LocalOperation.Content,
		},
		RemoteOperation: models.ConflictOperation{
			Kind:    c.RemoteOperation.Kind,
			Content: c.RemoteOperation.Content,
		},
	}
}
