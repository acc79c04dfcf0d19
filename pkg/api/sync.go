package api

import "time"

// OperationType задает тип операции над сущностью
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
)

// OperationEnvelope представляет одну локальную операцию в запросе синхронизации
type OperationEnvelope struct {
	EnqueuedAt time.Time     `json:"enqueued_at"`
	ID         string        `json:"id"`
	Type       OperationType `json:"type"`
	EntityType string        `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	Payload    []byte        `json:"payload,omitempty"`
	Timestamp  int64         `json:"timestamp"`
}

// SyncRequest представляет запрос на синхронизацию документа от клиента
type SyncRequest struct {
	DocumentID string              `json:"document_id"`
	Operations []OperationEnvelope `json:"operations"`
	CRDTUpdate []byte              `json:"crdt_update,omitempty"`
}

// VectorClock представляет версионный вектор состояния документа на сервере
type VectorClock struct {
	Clocks  map[string]uint64 `json:"clocks"`
	Version int64             `json:"version"`
}

// CRDTState представляет закодированное CRDT состояние документа
type CRDTState struct {
	State       []byte      `json:"state"`
	VectorClock VectorClock `json:"vector_clock"`
}

// ConflictType задает тип конфликта, обнаруженного сервером
type ConflictType string

const (
	ConflictInsert ConflictType = "INSERT_CONFLICT"
	ConflictDelete ConflictType = "DELETE_CONFLICT"
	ConflictEdit   ConflictType = "EDIT_CONFLICT"
)

// Position описывает позицию конфликта внутри документа
type Position struct {
	Index  int `json:"index"`
	Offset int `json:"offset"`
	Length int `json:"length"`
	Depth  int `json:"depth"`
}

// ConflictOperation описывает одну из сторон конфликта
type ConflictOperation struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// SuggestedResolution содержит рекомендацию сервера по разрешению конфликта
type SuggestedResolution struct {
	Strategy   string `json:"strategy"`
	Resolution string `json:"resolution"`
}

// Conflict представляет конфликт, обнаруженный сервером при применении операций
type Conflict struct {
	Suggested       *SuggestedResolution `json:"suggested,omitempty"`
	ID              string               `json:"id"`
	Type            ConflictType         `json:"type"`
	LocalOperation  ConflictOperation    `json:"local_operation"`
	RemoteOperation ConflictOperation    `json:"remote_operation"`
	Position        Position             `json:"position"`
}

// APIError представляет ошибку уровня приложения внутри успешного HTTP ответа
type APIError struct {
	OperationID string `json:"operation_id,omitempty"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Terminal    bool   `json:"terminal"`
}

// SyncResponse представляет ответ сервера на синхронизацию документа
type SyncResponse struct {
	NewCRDTState      *CRDTState `json:"new_crdt_state,omitempty"`
	AppliedOperations []string   `json:"applied_operations"`
	Conflicts         []Conflict `json:"conflicts"`
	Errors            []APIError `json:"errors"`
	Success           bool       `json:"success"`
}

// EntityRequest представляет запрос на создание сущности
type EntityRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Payload    []byte `json:"payload,omitempty"`
}

// EntityResponse представляет ответ сервера на создание/удаление сущности
type EntityResponse struct {
	EntityID string `json:"entity_id"`
	Success  bool   `json:"success"`
}

// ErrorResponse представляет тело ошибки HTTP уровня
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse представляет ответ health check эндпоинта
type HealthResponse struct {
	Status string `json:"status"`
}
