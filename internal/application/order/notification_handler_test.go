package order

import (
	"context"
	"errors"
	"testing"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProducer(t *testing.T) *partner.Producer {
	t.Helper()
	producer, err := partner.NewProducer("OLIVECO", "Olive Grove Collective")
	require.NoError(t, err)
	require.NoError(t, producer.SetContact("Nikos", "+302101234567", "orders@olivegrove.gr"))
	producer.ClearDomainEvents()
	return producer
}

func createdEventFor(t *testing.T, o *order.Order) *order.OrderCreatedEvent {
	t.Helper()
	return order.NewOrderCreatedEvent(o)
}

func TestNotificationHandler_EventTypes(t *testing.T) {
	h := NewNotificationHandler(new(MockProducerRepository), new(MockDispatcher), zap.NewNop())
	assert.ElementsMatch(t, []string{"OrderCreated", "OrderStatusChanged"}, h.EventTypes())
}

func TestNotificationHandler_OrderCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies buyer and producer", func(t *testing.T) {
		producerRepo := new(MockProducerRepository)
		dispatcher := new(MockDispatcher)
		o := newTestOrder(t)
		producer := newTestProducer(t)

		producerRepo.On("FindByID", ctx, o.ProducerID).Return(producer, nil)
		dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n Notification) bool {
			return n.Audience == AudienceBuyer && n.Recipient == "maria@example.com"
		})).Return(nil)
		dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n Notification) bool {
			return n.Audience == AudienceProducer && n.Recipient == "orders@olivegrove.gr"
		})).Return(nil)

		h := NewNotificationHandler(producerRepo, dispatcher, zap.NewNop())
		err := h.Handle(ctx, createdEventFor(t, o))
		require.NoError(t, err)
		dispatcher.AssertNumberOfCalls(t, "Dispatch", 2)
	})

	t.Run("producer lookup failure still notifies buyer and returns nil", func(t *testing.T) {
		producerRepo := new(MockProducerRepository)
		dispatcher := new(MockDispatcher)
		o := newTestOrder(t)

		producerRepo.On("FindByID", ctx, o.ProducerID).Return(nil, errors.New("db down"))
		dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n Notification) bool {
			return n.Audience == AudienceBuyer
		})).Return(nil)

		h := NewNotificationHandler(producerRepo, dispatcher, zap.NewNop())
		err := h.Handle(ctx, createdEventFor(t, o))
		require.NoError(t, err)
		dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
	})

	t.Run("dispatch failure is swallowed", func(t *testing.T) {
		producerRepo := new(MockProducerRepository)
		dispatcher := new(MockDispatcher)
		o := newTestOrder(t)

		producerRepo.On("FindByID", ctx, o.ProducerID).Return(newTestProducer(t), nil)
		dispatcher.On("Dispatch", ctx, mock.Anything).Return(errors.New("queue unavailable"))

		h := NewNotificationHandler(producerRepo, dispatcher, zap.NewNop())
		assert.NoError(t, h.Handle(ctx, createdEventFor(t, o)))
	})
}

func TestNotificationHandler_StatusChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies buyer with status label", func(t *testing.T) {
		dispatcher := new(MockDispatcher)
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		events := o.GetDomainEvents()
		require.Len(t, events, 1)

		dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n Notification) bool {
			return n.Audience == AudienceBuyer && n.OrderNumber == o.OrderNumber
		})).Return(nil)

		h := NewNotificationHandler(new(MockProducerRepository), dispatcher, zap.NewNop())
		require.NoError(t, h.Handle(ctx, events[0]))
		dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
	})

	t.Run("cancellation includes the reason", func(t *testing.T) {
		dispatcher := new(MockDispatcher)
		o := newTestOrder(t)
		require.NoError(t, o.Cancel("producer out of stock"))
		events := o.GetDomainEvents()
		require.Len(t, events, 1)

		var got Notification
		dispatcher.On("Dispatch", ctx, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(Notification)
		}).Return(nil)

		h := NewNotificationHandler(new(MockProducerRepository), dispatcher, zap.NewNop())
		require.NoError(t, h.Handle(ctx, events[0]))
		assert.Contains(t, got.Body, "producer out of stock")
	})
}
