package netmon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkerStub реализует HealthChecker с переключаемым результатом
type checkerStub struct {
	mu  sync.Mutex
	err error
}

func (c *checkerStub) Health(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *checkerStub) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func TestProbe_PublishesFirstState(t *testing.T) {
	checker := &checkerStub{}
	probe := NewProbe(checker, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go probe.Run(ctx)

	select {
	case online := <-probe.Events():
		assert.True(t, online, "Healthy server should publish online")
	case <-time.After(time.Second):
		t.Fatal("probe should publish the first poll result")
	}
}

func TestProbe_PublishesOnlyTransitions(t *testing.T) {
	checker := &checkerStub{err: errors.New("unreachable")}
	probe := NewProbe(checker, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go probe.Run(ctx)

	// Первый опрос: offline
	select {
	case online := <-probe.Events():
		require.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("probe should publish the first poll result")
	}

	// Сервер поднялся: следующая публикация — переход в online.
	// Промежуточные одинаковые состояния не публикуются.
	checker.setErr(nil)

	select {
	case online := <-probe.Events():
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("probe should publish the offline to online transition")
	}
}

func TestProbe_ClosesEventsOnCancel(t *testing.T) {
	checker := &checkerStub{}
	probe := NewProbe(checker, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go probe.Run(ctx)

	// Снимаем первую публикацию и отменяем контекст
	<-probe.Events()
	cancel()

	select {
	case _, ok := <-probe.Events():
		assert.False(t, ok, "Events channel should close when Run returns")
	case <-time.After(time.Second):
		t.Fatal("Events channel should close when the context is canceled")
	}
}
