package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/crdt"
)

// Store владеет in-memory CRDT репликами документов: не более одной
// реплики на documentId, лениво созданной и гидрированной из последнего
// сохраненного байт-состояния. Каждая локальная мутация проходит через
// Store и завершается записью закодированного состояния в durable
// storage — write-through с наблюдаемым результатом, не fire-and-forget.
type Store struct {
	states storage.StateStorage
	logger *slog.Logger
	docs   map[string]*crdt.Document
	nodeID string
	mu     sync.Mutex
}

// NewStore creates a new CRDT document store
func NewStore(states storage.StateStorage, nodeID string, logger *slog.Logger) *Store {
	return &Store{
		states: states,
		logger: logger,
		docs:   make(map[string]*crdt.Document),
		nodeID: nodeID,
	}
}

// GetOrCreate returns the cached in-memory replica for the document,
// constructing and hydrating it from persisted state on first access.
// Повторные вызовы возвращают тот же объект реплики.
func (s *Store) GetOrCreate(ctx context.Context, documentID string) (*crdt.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.docs[documentID]; ok {
		return doc, nil
	}

	doc := crdt.NewDocument(documentID, crdt.NewLamportClockWithNodeID(s.nodeID))

	data, err := s.states.GetState(ctx, documentID)
	switch {
	case err == nil:
		if err := doc.Merge(data); err != nil {
			return nil, fmt.Errorf("failed to hydrate document %s: %w", documentID, err)
		}
	case errors.Is(err, storage.ErrStateNotFound):
		// Первое обращение, состояния еще нет
	default:
		return nil, fmt.Errorf("failed to load document state: %w", err)
	}

	s.docs[documentID] = doc
	return doc, nil
}

// InsertText inserts text into the document at the given offset and
// persists the updated replica state. Мутация остается в памяти даже
// если запись на диск не удалась; ошибка возвращается вызывающему.
func (s *Store) InsertText(ctx context.Context, documentID string, offset int, text string) error {
	doc, err := s.GetOrCreate(ctx, documentID)
	if err != nil {
		return err
	}

	if err := doc.InsertAt(offset, text); err != nil {
		return fmt.Errorf("failed to insert text: %w", err)
	}

	return s.persist(ctx, doc)
}

// DeleteText removes the range [offset, offset+length) from the document
// and persists the updated replica state.
func (s *Store) DeleteText(ctx context.Context, documentID string, offset, length int) error {
	doc, err := s.GetOrCreate(ctx, documentID)
	if err != nil {
		return err
	}

	if err := doc.DeleteRange(offset, length); err != nil {
		return fmt.Errorf("failed to delete text: %w", err)
	}

	return s.persist(ctx, doc)
}

// EncodeState serializes the current replica to bytes for transmission
func (s *Store) EncodeState(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := s.GetOrCreate(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return doc.EncodeState()
}

// ApplyRemoteUpdate merges remote state bytes into the local replica
// and persists the merged state. Слияние идемпотентно: повторное
// применение тех же байт не меняет содержимое.
func (s *Store) ApplyRemoteUpdate(ctx context.Context, documentID string, data []byte) error {
	doc, err := s.GetOrCreate(ctx, documentID)
	if err != nil {
		return err
	}

	if err := doc.Merge(data); err != nil {
		return fmt.Errorf("failed to merge remote update: %w", err)
	}

	return s.persist(ctx, doc)
}

// persist пишет закодированное состояние реплики в durable storage
func (s *Store) persist(ctx context.Context, doc *crdt.Document) error {
	data, err := doc.EncodeState()
	if err != nil {
		return fmt.Errorf("failed to encode document state: %w", err)
	}

	if err := s.states.SaveState(ctx, doc.DocumentID(), data); err != nil {
		s.logger.Warn("failed to persist document state, replica stays in memory",
			"document_id", doc.DocumentID(),
			"error", err)
		return fmt.Errorf("failed to persist document state: %w", err)
	}

	return nil
}
