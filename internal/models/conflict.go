package models

import "time"

// ConflictType задает тип конфликта, обнаруженного сервером
type ConflictType string

const (
	ConflictInsert ConflictType = "INSERT_CONFLICT"
	ConflictDelete ConflictType = "DELETE_CONFLICT"
	ConflictEdit   ConflictType = "EDIT_CONFLICT"
)

// ConflictState задает состояние конфликта в жизненном цикле разрешения.
// Переходы: DETECTED -> AUTO_RESOLVED или DETECTED -> PENDING_MANUAL -> RESOLVED.
type ConflictState string

const (
	ConflictDetected      ConflictState = "DETECTED"
	ConflictAutoResolved  ConflictState = "AUTO_RESOLVED"
	ConflictPendingManual ConflictState = "PENDING_MANUAL"
	ConflictResolvedState ConflictState = "RESOLVED"
)

// Resolution strategy константы
const (
	StrategyLastWriteWins = "last-write-wins"
	StrategyKeepDeletion  = "keep-deletion"
	StrategyMerge         = "merge"
	StrategyManual        = "manual"
)

// Position описывает позицию конфликта внутри текста документа
type Position struct {
	Index  int `json:"index"`
	Offset int `json:"offset"`
	Length int `json:"length"`
	Depth  int `json:"depth"`
}

// ConflictOperation описывает одну из сторон конфликта (локальную или удаленную)
type ConflictOperation struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// Resolution представляет выбранное разрешение конфликта
type Resolution struct {
	Strategy string `json:"strategy"`
	Content  string `json:"content"`
}

// ConflictResolution представляет конфликт, возвращенный сервером,
// вместе с его позицией и состоянием разрешения.
// DocumentID заполняется при создании записи, чтобы выбранное вручную
// разрешение можно было применить к CRDT реплике документа.
type ConflictResolution struct {
	DetectedAt      time.Time         `json:"detected_at"`
	Resolution      *Resolution       `json:"resolution,omitempty"`
	ID              string            `json:"id"`
	DocumentID      string            `json:"document_id"`
	Type            ConflictType      `json:"type"`
	State           ConflictState     `json:"state"`
	LocalOperation  ConflictOperation `json:"local_operation"`
	RemoteOperation ConflictOperation `json:"remote_operation"`
	Position        Position          `json:"position"`
	AutoResolved    bool              `json:"auto_resolved"`
}

// IsPending reports whether the conflict awaits a manual decision.
func (c *ConflictResolution) IsPending() bool {
	return !c.AutoResolved && c.Resolution == nil
}

// Clone создает копию записи конфликта
func (c *ConflictResolution) Clone() *ConflictResolution {
	clone := *c
	if c.Resolution != nil {
		res := *c.Resolution
		clone.Resolution = &res
	}
	return &clone
}
