package order

import (
	"context"
	"fmt"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Notification is one outbound message for the external notifier
type Notification struct {
	Audience    string `json:"audience"` // buyer or producer
	Recipient   string `json:"recipient"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	OrderNumber string `json:"order_number"`
}

// Audience constants
const (
	AudienceBuyer    = "buyer"
	AudienceProducer = "producer"
)

// Dispatcher hands notifications to the delivery channel (queue, log).
// Implementations must not block order processing for long.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// NotificationHandler listens for order events and dispatches buyer and
// producer notifications. Dispatch failures are logged and swallowed;
// a lost notification never fails or rolls back an order operation.
type NotificationHandler struct {
	producerRepo partner.ProducerRepository
	dispatcher   Dispatcher
	logger       *zap.Logger
}

// NewNotificationHandler creates a new handler for order notifications
func NewNotificationHandler(producerRepo partner.ProducerRepository, dispatcher Dispatcher, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		producerRepo: producerRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *NotificationHandler) EventTypes() []string {
	return []string{order.EventTypeOrderCreated, order.EventTypeOrderStatusChanged}
}

// Handle processes an order event and fans out notifications
func (h *NotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch evt := event.(type) {
	case *order.OrderCreatedEvent:
		h.handleCreated(ctx, evt)
	case *order.OrderStatusChangedEvent:
		h.handleStatusChanged(ctx, evt)
	default:
		h.logger.Warn("unexpected event type for notification handler",
			zap.String("event_type", event.EventType()),
		)
	}
	return nil
}

func (h *NotificationHandler) handleCreated(ctx context.Context, evt *order.OrderCreatedEvent) {
	h.dispatch(ctx, Notification{
		Audience:    AudienceBuyer,
		Recipient:   buyerRecipient(evt.BuyerEmail, evt.BuyerPhone),
		Subject:     fmt.Sprintf("Order %s received", evt.OrderNumber),
		Body:        fmt.Sprintf("Thank you %s, your order %s totalling %.2f EUR has been received. Track it with token %s.", evt.BuyerName, evt.OrderNumber, float64(evt.Total)/100, evt.TrackingToken),
		OrderNumber: evt.OrderNumber,
	})

	producer, err := h.producerRepo.FindByID(ctx, evt.ProducerID)
	if err != nil {
		h.logger.Error("failed to load producer for order notification",
			zap.String("order_number", evt.OrderNumber),
			zap.String("producer_id", evt.ProducerID.String()),
			zap.Error(err),
		)
		return
	}

	h.dispatch(ctx, Notification{
		Audience:    AudienceProducer,
		Recipient:   producerRecipient(producer),
		Subject:     fmt.Sprintf("New order %s", evt.OrderNumber),
		Body:        fmt.Sprintf("You have a new order %s with %d line(s). Please confirm and start packing once payment clears.", evt.OrderNumber, len(evt.Items)),
		OrderNumber: evt.OrderNumber,
	})
}

func (h *NotificationHandler) handleStatusChanged(ctx context.Context, evt *order.OrderStatusChangedEvent) {
	body := fmt.Sprintf("Your order %s is now: %s.", evt.OrderNumber, evt.ToStatus.Label())
	if evt.ToStatus == order.StatusCancelled && evt.Reason != "" {
		body = fmt.Sprintf("Your order %s has been cancelled: %s", evt.OrderNumber, evt.Reason)
	}

	h.dispatch(ctx, Notification{
		Audience:    AudienceBuyer,
		Recipient:   buyerRecipient(evt.BuyerEmail, evt.BuyerPhone),
		Subject:     fmt.Sprintf("Order %s update", evt.OrderNumber),
		Body:        body,
		OrderNumber: evt.OrderNumber,
	})
}

func (h *NotificationHandler) dispatch(ctx context.Context, n Notification) {
	if err := h.dispatcher.Dispatch(ctx, n); err != nil {
		h.logger.Error("notification dispatch failed",
			zap.String("audience", n.Audience),
			zap.String("order_number", n.OrderNumber),
			zap.Error(err),
		)
	}
}

func buyerRecipient(email, phone string) string {
	if email != "" {
		return email
	}
	return phone
}

func producerRecipient(p *partner.Producer) string {
	if p.Email != "" {
		return p.Email
	}
	return p.Phone
}

// Ensure NotificationHandler implements shared.EventHandler
var _ shared.EventHandler = (*NotificationHandler)(nil)
