package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/crdt"
	"github.com/iudanet/docsync/internal/models"
)

// memQueueStorage — потокобезопасное in-memory хранилище очереди для тестов
type memQueueStorage struct {
	mu  sync.Mutex
	ops map[string]*models.SyncOperation
}

func newMemQueueStorage() *memQueueStorage {
	return &memQueueStorage{ops: make(map[string]*models.SyncOperation)}
}

func (m *memQueueStorage) mock() *storage.QueueStorageMock {
	return &storage.QueueStorageMock{
		SaveOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.ops[op.ID] = op.Clone()
			return nil
		},
		GetOperationFunc: func(ctx context.Context, id string) (*models.SyncOperation, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			op, ok := m.ops[id]
			if !ok {
				return nil, storage.ErrOperationNotFound
			}
			return op.Clone(), nil
		},
		ListOperationsFunc: func(ctx context.Context) ([]*models.SyncOperation, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			list := make([]*models.SyncOperation, 0, len(m.ops))
			for _, op := range m.ops {
				list = append(list, op.Clone())
			}
			sort.Slice(list, func(i, j int) bool {
				return list[i].Timestamp < list[j].Timestamp
			})
			return list, nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.ops, id)
			return nil
		},
	}
}

func (m *memQueueStorage) get(id string) *models.SyncOperation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops[id].Clone()
}

func (m *memQueueStorage) put(op *models.SyncOperation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops[op.ID] = op.Clone()
}

// connStub реализует Connectivity с фиксированным состоянием
type connStub struct{ online bool }

func (c *connStub) IsOnline() bool { return c.online }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueue_Enqueue(t *testing.T) {
	mem := newMemQueueStorage()
	syncer := &SyncerMock{}
	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, 5, testLogger())

	op := &models.SyncOperation{
		Type:       models.OperationCreate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
		Payload:    models.CreatePayload{Title: "doc"},
	}

	id, err := q.Enqueue(context.Background(), op)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	saved := mem.get(id)
	require.NotNil(t, saved)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, int64(1), saved.Timestamp, "Timestamp should come from the Lamport clock")
	assert.Zero(t, saved.RetryCount)
	assert.Empty(t, syncer.SyncOperationCalls(), "Offline enqueue should not trigger a drain")
}

func TestQueue_Drain_ProcessesInOrder(t *testing.T) {
	// Три операции, накопленные офлайн, уходят на сервер строго
	// в порядке постановки; успешные вычищаются из очереди.
	mem := newMemQueueStorage()

	var synced []string
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			synced = append(synced, op.EntityID)
			return nil
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, 5, testLogger())

	ctx := context.Background()
	for _, entityID := range []string{"doc-1", "doc-2", "doc-3"} {
		_, err := q.Enqueue(ctx, &models.SyncOperation{
			Type:       models.OperationUpdate,
			EntityType: models.EntityDocument,
			EntityID:   entityID,
		})
		require.NoError(t, err)
	}

	n, err := q.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, q.Drain(ctx))

	assert.Equal(t, []string{"doc-1", "doc-2", "doc-3"}, synced,
		"Operations should drain in enqueue order")

	n, err = q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "Successful operations should be purged from the queue")
}

func TestQueue_Drain_Reentrant(t *testing.T) {
	// Повторный Drain во время активного прохода отбрасывается,
	// а не ставится в очередь.
	mem := newMemQueueStorage()

	started := make(chan struct{})
	release := make(chan struct{})
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			close(started)
			<-release
			return nil
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, 5, testLogger())

	ctx := context.Background()
	_, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- q.Drain(ctx) }()

	<-started
	assert.True(t, q.InFlight())

	// Второй Drain возвращается сразу, не дожидаясь первого
	require.NoError(t, q.Drain(ctx))

	close(release)
	require.NoError(t, <-done)

	assert.Len(t, syncer.SyncOperationCalls(), 1,
		"The dropped drain should not produce extra sync calls")
	assert.False(t, q.InFlight())
}

func TestQueue_Drain_RetryableFailure(t *testing.T) {
	mem := newMemQueueStorage()
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			op.Status = models.StatusError
			return errors.New("connection reset")
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	maxRetries := 3
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, maxRetries, testLogger())

	ctx := context.Background()
	id, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	// Каждый drain добавляет ровно одну попытку, счетчик монотонен
	for attempt := 1; attempt <= maxRetries; attempt++ {
		require.NoError(t, q.Drain(ctx))
		assert.Equal(t, attempt, mem.get(id).RetryCount)
	}

	// Бюджет исчерпан: дальнейшие drain операцию не трогают
	require.NoError(t, q.Drain(ctx))
	assert.Len(t, syncer.SyncOperationCalls(), maxRetries)

	// Провалившаяся операция остается видимой в очереди
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueue_Drain_TerminalFailure(t *testing.T) {
	mem := newMemQueueStorage()
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			op.Status = models.StatusError
			return &clientapi.TerminalError{Message: "validation failed", Status: 422}
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	maxRetries := 5
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, maxRetries, testLogger())

	ctx := context.Background()
	id, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	require.NoError(t, q.Drain(ctx))

	// Терминальная ошибка исчерпывает бюджет с первой попытки
	saved := mem.get(id)
	assert.Equal(t, maxRetries, saved.RetryCount)

	require.NoError(t, q.Drain(ctx))
	assert.Len(t, syncer.SyncOperationCalls(), 1, "Terminal failures should never be retried")
}

func TestQueue_Drain_PicksUpOperationsEnqueuedMidPass(t *testing.T) {
	// Операция, добавленная во время прохода, обрабатывается тем же
	// вызовом Drain, а не ждет внешнего триггера.
	mem := newMemQueueStorage()
	clock := crdt.NewLamportClockWithNodeID("node-a")

	var synced []string
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			synced = append(synced, op.EntityID)
			if op.EntityID == "doc-1" {
				// Имитация Enqueue, прилетевшего во время прохода
				mem.put(&models.SyncOperation{
					ID:         "late-op",
					Type:       models.OperationUpdate,
					EntityType: models.EntityDocument,
					EntityID:   "doc-late",
					Status:     models.StatusPending,
					Timestamp:  clock.Tick(),
				})
			}
			return nil
		},
	}

	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, 5, testLogger())

	ctx := context.Background()
	_, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	require.NoError(t, q.Drain(ctx))

	assert.Equal(t, []string{"doc-1", "doc-late"}, synced)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueue_Enqueue_TriggersDrainWhenOnline(t *testing.T) {
	mem := newMemQueueStorage()

	drained := make(chan string, 1)
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			drained <- op.EntityID
			return nil
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), syncer, &connStub{online: true}, clock, 5, testLogger())

	_, err := q.Enqueue(context.Background(), &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	select {
	case entityID := <-drained:
		assert.Equal(t, "doc-1", entityID)
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue while online should trigger an immediate drain")
	}
}

func TestQueue_Drain_ContextCancellation(t *testing.T) {
	mem := newMemQueueStorage()
	syncer := &SyncerMock{
		SyncOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return nil
		},
	}

	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), syncer, &connStub{online: false}, clock, 5, testLogger())

	ctx := context.Background()
	_, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err = q.Drain(cancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, syncer.SyncOperationCalls())
}

func TestQueue_Load_SurvivesRestart(t *testing.T) {
	// Очередь переживает рестарт процесса: операции, ожидающие в bbolt,
	// не перезаписываются новыми. Без Load свежие часы после рестарта
	// начали бы с 1 и новая операция заняла бы ключ первой сохраненной.
	dbPath := filepath.Join(t.TempDir(), "queue.db")
	ctx := context.Background()

	st, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)

	syncer := &SyncerMock{}
	q := NewQueue(st, syncer, &connStub{online: false}, crdt.NewLamportClockWithNodeID("node-a"), 5, testLogger())

	firstID, err := q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-1",
	})
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-2",
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Рестарт: тот же файл, свежие часы
	st2, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, st2.Close()) }()

	q2 := NewQueue(st2, syncer, &connStub{online: false}, crdt.NewLamportClockWithNodeID("node-a"), 5, testLogger())
	require.NoError(t, q2.Load(ctx))

	_, err = q2.Enqueue(ctx, &models.SyncOperation{
		Type:       models.OperationUpdate,
		EntityType: models.EntityDocument,
		EntityID:   "doc-3",
	})
	require.NoError(t, err)

	n, err := q2.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "Operations from the previous session must survive the restart")

	// Первая операция по-прежнему доступна и не затерта
	survived, err := st2.GetOperation(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", survived.EntityID)

	// Порядок постановки сохраняется сквозь рестарт
	ops, err := q2.Operations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, "doc-1", ops[0].EntityID)
	assert.Equal(t, "doc-2", ops[1].EntityID)
	assert.Equal(t, "doc-3", ops[2].EntityID)
}

func TestQueue_Load_ObservesMaxTimestamp(t *testing.T) {
	mem := newMemQueueStorage()
	mem.put(&models.SyncOperation{
		ID:        "op-1",
		Type:      models.OperationUpdate,
		EntityID:  "doc-1",
		Status:    models.StatusPending,
		Timestamp: 7,
	})

	clock := crdt.NewLamportClockWithNodeID("node-a")
	q := NewQueue(mem.mock(), &SyncerMock{}, &connStub{online: false}, clock, 5, testLogger())
	require.NoError(t, q.Load(context.Background()))

	assert.Equal(t, int64(7), clock.Current())
	assert.Equal(t, int64(8), clock.Tick(), "Next local event must order after every persisted one")
}
