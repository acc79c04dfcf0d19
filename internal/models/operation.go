package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationType задает тип локальной операции над сущностью
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
)

// OperationStatus задает статус операции в очереди синхронизации
type OperationStatus string

const (
	StatusPending OperationStatus = "PENDING"
	StatusSyncing OperationStatus = "SYNCING"
	StatusSuccess OperationStatus = "SUCCESS"
	StatusError   OperationStatus = "ERROR"
)

// EntityType константы для типов сущностей
const (
	EntityDocument = "document"
	EntityFolder   = "folder"
	EntityComment  = "comment"
)

// PayloadKind задает вариант полезной нагрузки операции
type PayloadKind string

const (
	PayloadCreate PayloadKind = "create"
	PayloadUpdate PayloadKind = "update"
	PayloadDelete PayloadKind = "delete"
)

// OperationPayload is the tagged payload carried by a SyncOperation.
// Each operation type has its own variant; there are no untyped fields.
type OperationPayload interface {
	Kind() PayloadKind
}

// CreatePayload carries the initial state of a newly created entity.
type CreatePayload struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// Kind returns the payload variant tag
func (CreatePayload) Kind() PayloadKind { return PayloadCreate }

// UpdatePayload carries metadata changes for an entity. Document content
// itself travels as encoded CRDT state, not inside the payload.
type UpdatePayload struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Kind returns the payload variant tag
func (UpdatePayload) Kind() PayloadKind { return PayloadUpdate }

// DeletePayload carries delete options for an entity.
type DeletePayload struct {
	Soft bool `json:"soft"`
}

// Kind returns the payload variant tag
func (DeletePayload) Kind() PayloadKind { return PayloadDelete }

// SyncOperation представляет одну локальную мутацию, ожидающую отправки на сервер.
// Создается при локальном изменении, мутируется только очередью во время drain,
// удаляется из очереди при статусе SUCCESS.
type SyncOperation struct {
	EnqueuedAt time.Time        `json:"enqueued_at"`
	Payload    OperationPayload `json:"-"`
	ID         string           `json:"id"`
	Type       OperationType    `json:"type"`
	EntityType string           `json:"entity_type"`
	EntityID   string           `json:"entity_id"`
	Error      string           `json:"error,omitempty"`
	Status     OperationStatus  `json:"status"`
	Timestamp  int64            `json:"timestamp"`
	RetryCount int              `json:"retry_count"`
}

// payloadEnvelope оборачивает payload тегом варианта для JSON сериализации
type payloadEnvelope struct {
	Kind PayloadKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON сериализует операцию вместе с тегированным payload
func (op SyncOperation) MarshalJSON() ([]byte, error) {
	type alias SyncOperation
	aux := struct {
		Payload *payloadEnvelope `json:"payload,omitempty"`
		alias
	}{alias: alias(op)}

	if op.Payload != nil {
		data, err := json.Marshal(op.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		aux.Payload = &payloadEnvelope{Kind: op.Payload.Kind(), Data: data}
	}

	return json.Marshal(aux)
}

// UnmarshalJSON десериализует операцию, восстанавливая вариант payload по тегу
func (op *SyncOperation) UnmarshalJSON(data []byte) error {
	type alias SyncOperation
	aux := struct {
		Payload *payloadEnvelope `json:"payload,omitempty"`
		*alias
	}{alias: (*alias)(op)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Payload == nil {
		op.Payload = nil
		return nil
	}

	payload, err := unmarshalPayload(aux.Payload.Kind, aux.Payload.Data)
	if err != nil {
		return err
	}
	op.Payload = payload

	return nil
}

func unmarshalPayload(kind PayloadKind, data json.RawMessage) (OperationPayload, error) {
	switch kind {
	case PayloadCreate:
		var p CreatePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal create payload: %w", err)
		}
		return p, nil
	case PayloadUpdate:
		var p UpdatePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal update payload: %w", err)
		}
		return p, nil
	case PayloadDelete:
		var p DeletePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal delete payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown payload kind: %q", kind)
	}
}

// IsSettled reports whether the operation finished its lifecycle in the queue.
func (op *SyncOperation) IsSettled() bool {
	return op.Status == StatusSuccess
}

// Clone создает копию операции
func (op *SyncOperation) Clone() *SyncOperation {
	clone := *op
	return &clone
}
