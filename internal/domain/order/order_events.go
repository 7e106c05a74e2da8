package order

import (
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// CreatedItem is the line snapshot carried by OrderCreatedEvent
type CreatedItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Quantity  int64     `json:"quantity"`
	LineTotal int64     `json:"line_total"`
}

// OrderCreatedEvent is published when checkout places a new order.
// The notification handler fans it out to buyer and producer.
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID     `json:"order_id"`
	OrderNumber   string        `json:"order_number"`
	ProducerID    uuid.UUID     `json:"producer_id"`
	Items         []CreatedItem `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	ShippingCost  int64         `json:"shipping_cost"`
	Total         int64         `json:"total"`
	TrackingToken string        `json:"tracking_token"`
	BuyerName     string        `json:"buyer_name"`
	BuyerEmail    string        `json:"buyer_email,omitempty"`
	BuyerPhone    string        `json:"buyer_phone"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	items := make([]CreatedItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, CreatedItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		ProducerID:      o.ProducerID,
		Items:           items,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		TrackingToken:   o.TrackingToken,
		BuyerName:       o.Address.Name(),
		BuyerEmail:      o.Address.Email(),
		BuyerPhone:      o.Address.Phone(),
	}
}

// OrderStatusChangedEvent is published on every successful transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ProducerID  uuid.UUID `json:"producer_id"`
	FromStatus  Status    `json:"from_status"`
	ToStatus    Status    `json:"to_status"`
	Reason      string    `json:"reason,omitempty"`
	BuyerName   string    `json:"buyer_name"`
	BuyerEmail  string    `json:"buyer_email,omitempty"`
	BuyerPhone  string    `json:"buyer_phone"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from, to Status, reason string) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		ProducerID:      o.ProducerID,
		FromStatus:      from,
		ToStatus:        to,
		Reason:          reason,
		BuyerName:       o.Address.Name(),
		BuyerEmail:      o.Address.Email(),
		BuyerPhone:      o.Address.Phone(),
	}
}
