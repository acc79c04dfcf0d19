package docstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/crdt"
)

// memStateStorage — in-memory хранилище CRDT состояний для тестов
type memStateStorage struct {
	mu     sync.Mutex
	states map[string][]byte
}

func newMemStateStorage() *memStateStorage {
	return &memStateStorage{states: make(map[string][]byte)}
}

func (m *memStateStorage) mock() *storage.StateStorageMock {
	return &storage.StateStorageMock{
		SaveStateFunc: func(ctx context.Context, documentID string, data []byte) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.states[documentID] = append([]byte(nil), data...)
			return nil
		},
		GetStateFunc: func(ctx context.Context, documentID string) ([]byte, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			data, ok := m.states[documentID]
			if !ok {
				return nil, storage.ErrStateNotFound
			}
			return append([]byte(nil), data...), nil
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_GetOrCreate_SingleReplica(t *testing.T) {
	// Один documentId — одна реплика: повторные обращения возвращают
	// тот же объект, а не свежую копию.
	store := NewStore(newMemStateStorage().mock(), "node-a", testLogger())

	ctx := context.Background()
	first, err := store.GetOrCreate(ctx, "doc-1")
	require.NoError(t, err)

	second, err := store.GetOrCreate(ctx, "doc-1")
	require.NoError(t, err)

	assert.Same(t, first, second, "Repeated access should return the same replica object")

	other, err := store.GetOrCreate(ctx, "doc-2")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestStore_GetOrCreate_HydratesFromStorage(t *testing.T) {
	mem := newMemStateStorage()
	ctx := context.Background()

	// Первая "сессия": реплика наполняется и сохраняется
	store1 := NewStore(mem.mock(), "node-a", testLogger())
	require.NoError(t, store1.InsertText(ctx, "doc-1", 0, "hello world"))
	require.NoError(t, store1.DeleteText(ctx, "doc-1", 5, 6))

	// Вторая "сессия": свежий Store гидрирует реплику из storage
	store2 := NewStore(mem.mock(), "node-a", testLogger())
	doc, err := store2.GetOrCreate(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "hello", doc.Text(), "Hydrated replica should carry the persisted content")
}

func TestStore_InsertText_WriteThrough(t *testing.T) {
	mem := newMemStateStorage()
	stateMock := mem.mock()
	store := NewStore(stateMock, "node-a", testLogger())

	ctx := context.Background()
	require.NoError(t, store.InsertText(ctx, "doc-1", 0, "hello"))

	// Каждая мутация завершается записью состояния
	require.Len(t, stateMock.SaveStateCalls(), 1)
	assert.Equal(t, "doc-1", stateMock.SaveStateCalls()[0].DocumentID)

	require.NoError(t, store.DeleteText(ctx, "doc-1", 0, 2))
	assert.Len(t, stateMock.SaveStateCalls(), 2)
}

func TestStore_InsertText_PersistFailureKeepsReplica(t *testing.T) {
	// Ошибка записи возвращается вызывающему, но правка остается в памяти
	stateMock := &storage.StateStorageMock{
		GetStateFunc: func(ctx context.Context, documentID string) ([]byte, error) {
			return nil, storage.ErrStateNotFound
		},
		SaveStateFunc: func(ctx context.Context, documentID string, data []byte) error {
			return errors.New("disk full")
		},
	}

	store := NewStore(stateMock, "node-a", testLogger())

	ctx := context.Background()
	err := store.InsertText(ctx, "doc-1", 0, "hello")
	require.Error(t, err)

	doc, err := store.GetOrCreate(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Text(), "The in-memory edit should survive a persistence failure")
}

func TestStore_ApplyRemoteUpdate(t *testing.T) {
	mem := newMemStateStorage()
	store := NewStore(mem.mock(), "node-a", testLogger())

	ctx := context.Background()
	require.NoError(t, store.InsertText(ctx, "doc-1", 0, "local"))

	// Состояние другой реплики
	remote := crdt.NewDocument("doc-1", crdt.NewLamportClockWithNodeID("node-b"))
	require.NoError(t, remote.InsertAt(0, "remote"))
	remoteState, err := remote.EncodeState()
	require.NoError(t, err)

	require.NoError(t, store.ApplyRemoteUpdate(ctx, "doc-1", remoteState))

	doc, err := store.GetOrCreate(ctx, "doc-1")
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "local")
	assert.Contains(t, doc.Text(), "remote")

	// Повторное применение тех же байт ничего не меняет
	before := doc.Text()
	require.NoError(t, store.ApplyRemoteUpdate(ctx, "doc-1", remoteState))
	assert.Equal(t, before, doc.Text())
}

func TestStore_EncodeState(t *testing.T) {
	store := NewStore(newMemStateStorage().mock(), "node-a", testLogger())

	ctx := context.Background()
	require.NoError(t, store.InsertText(ctx, "doc-1", 0, "hello"))

	data, err := store.EncodeState(ctx, "doc-1")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Байты состояния пригодны для слияния в другую реплику
	other := crdt.NewDocument("doc-1", crdt.NewLamportClockWithNodeID("node-b"))
	require.NoError(t, other.Merge(data))
	assert.Equal(t, "hello", other.Text())
}

func TestStore_GetOrCreate_StorageFailure(t *testing.T) {
	stateMock := &storage.StateStorageMock{
		GetStateFunc: func(ctx context.Context, documentID string) ([]byte, error) {
			return nil, errors.New("db closed")
		},
	}

	store := NewStore(stateMock, "node-a", testLogger())

	_, err := store.GetOrCreate(context.Background(), "doc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load document state")
}
