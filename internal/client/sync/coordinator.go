package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/docstore"
	"github.com/iudanet/docsync/internal/client/resolver"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

// Coordinator отправляет операции на сервер, мержит CRDT обновления
// и направляет конфликты в resolver. Инкремент счетчика повторов и
// политика отсечки по бюджету принадлежат очереди, не координатору.
type Coordinator struct {
	apiClient httpClient.ClientAPI
	docs      *docstore.Store
	resolver  *resolver.Resolver
	logger    *slog.Logger
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(apiClient httpClient.ClientAPI, docs *docstore.Store, res *resolver.Resolver, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		apiClient: apiClient,
		docs:      docs,
		resolver:  res,
		logger:    logger,
	}
}

// SyncOperation sends one operation to the remote authority, dispatching
// by operation type. Sets status SYNCING for the duration of the call,
// SUCCESS on completion, ERROR with a message on failure.
func (c *Coordinator) SyncOperation(ctx context.Context, op *models.SyncOperation) error {
	op.Status = models.StatusSyncing

	c.logger.Debug("syncing operation",
		"operation_id", op.ID,
		"type", op.Type,
		"entity_type", op.EntityType,
		"entity_id", op.EntityID)

	var err error
	switch op.Type {
	case models.OperationCreate:
		err = c.syncCreate(ctx, op)
	case models.OperationDelete:
		err = c.syncDelete(ctx, op)
	case models.OperationUpdate:
		err = c.syncUpdate(ctx, op)
	default:
		err = &httpClient.RemoteError{
			Code:     "UNKNOWN_OPERATION",
			Message:  fmt.Sprintf("unknown operation type %q", op.Type),
			Terminal: true,
		}
	}

	if err != nil {
		op.Status = models.StatusError
		op.Error = err.Error()
		return err
	}

	op.Status = models.StatusSuccess
	op.Error = ""
	return nil
}

// syncCreate пересылает создание сущности на entity эндпоинт
func (c *Coordinator) syncCreate(ctx context.Context, op *models.SyncOperation) error {
	var payload []byte
	if op.Payload != nil {
		data, err := json.Marshal(op.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		payload = data
	}

	_, err := c.apiClient.CreateEntity(ctx, api.EntityRequest{
		EntityType: op.EntityType,
		EntityID:   op.EntityID,
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("create entity failed: %w", err)
	}

	return nil
}

// syncDelete пересылает удаление сущности на entity эндпоинт
func (c *Coordinator) syncDelete(ctx context.Context, op *models.SyncOperation) error {
	_, err := c.apiClient.DeleteEntity(ctx, op.EntityType, op.EntityID)
	if err != nil {
		return fmt.Errorf("delete entity failed: %w", err)
	}

	return nil
}

// syncUpdate синхронизирует содержимое документа: отправляет локальное
// CRDT состояние, направляет конфликты из ответа в resolver и мержит
// новое состояние сервера в локальную реплику.
func (c *Coordinator) syncUpdate(ctx context.Context, op *models.SyncOperation) error {
	state, err := c.docs.EncodeState(ctx, op.EntityID)
	if err != nil {
		return fmt.Errorf("failed to encode document state: %w", err)
	}

	req := api.SyncRequest{
		DocumentID: op.EntityID,
		Operations: []api.OperationEnvelope{envelope(op)},
		CRDTUpdate: state,
	}

	resp, err := c.apiClient.SyncDocument(ctx, req)
	if err != nil {
		return err
	}

	// Конфликт — не ошибка, а структурированный результат
	if len(resp.Conflicts) > 0 {
		c.logger.Info("sync returned conflicts",
			"document_id", op.EntityID,
			"count", len(resp.Conflicts))

		if err := c.resolver.HandleRemoteConflicts(ctx, op.EntityID, resp.Conflicts); err != nil {
			return fmt.Errorf("failed to handle conflicts: %w", err)
		}
	}

	if resp.NewCRDTState != nil {
		if err := c.docs.ApplyRemoteUpdate(ctx, op.EntityID, resp.NewCRDTState.State); err != nil {
			return fmt.Errorf("failed to merge server state: %w", err)
		}
	}

	return nil
}

// envelope конвертирует операцию в wire формат
func envelope(op *models.SyncOperation) api.OperationEnvelope {
	env := api.OperationEnvelope{
		ID:         op.ID,
		Type:       api.OperationType(op.Type),
		EntityType: op.EntityType,
		EntityID:   op.EntityID,
		Timestamp:  op.Timestamp,
		EnqueuedAt: op.EnqueuedAt,
	}

	if op.Payload != nil {
		// Payload уже прошел валидацию при маршалинге в очередь
		if data, err := json.Marshal(op.Payload); err == nil {
			env.Payload = data
		}
	}

	return env
}
