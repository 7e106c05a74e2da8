package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	mu     sync.Mutex
	types  []string
	events []shared.DomainEvent
	err    error
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func newStatusEvent() shared.DomainEvent {
	return &order.OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(order.EventTypeOrderStatusChanged, order.AggregateTypeOrder, uuid.New()),
		OrderNumber:     "FM-2026-00042",
		FromStatus:      order.StatusPending,
		ToStatus:        order.StatusPaid,
	}
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribed handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{order.EventTypeOrderStatusChanged}}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(ctx, newStatusEvent()))
		assert.Equal(t, 1, handler.count())
	})

	t.Run("skips handlers for other event types", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{order.EventTypeOrderCreated}}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(ctx, newStatusEvent()))
		assert.Equal(t, 0, handler.count())
	})

	t.Run("handler failure does not block other handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{types: []string{order.EventTypeOrderStatusChanged}, err: errors.New("boom")}
		healthy := &recordingHandler{types: []string{order.EventTypeOrderStatusChanged}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(ctx, newStatusEvent()))
		assert.Equal(t, 1, failing.count())
		assert.Equal(t, 1, healthy.count())
	})

	t.Run("wildcard subscription receives everything", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(ctx, newStatusEvent(), newStatusEvent()))
		assert.Equal(t, 2, handler.count())
	})

	t.Run("unsubscribed handler receives nothing", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{order.EventTypeOrderStatusChanged}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		require.NoError(t, bus.Publish(ctx, newStatusEvent()))
		assert.Equal(t, 0, handler.count())
	})
}

func TestInMemoryEventBus_Lifecycle(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, bus.Start(ctx))
	require.NoError(t, bus.Stop(ctx))
}
