package order

import (
	"time"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/farmbasket/backend/internal/domain/shared/valueobject"
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/google/uuid"
)

// Status represents the lifecycle status of an order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusPacking   Status = "PACKING"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPacking, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Cancellation is allowed only before shipment.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusPaid || target == StatusCancelled
	case StatusPaid:
		return target == StatusPacking || target == StatusCancelled
	case StatusPacking:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for states with no outgoing transitions
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Label returns the buyer-facing description used by public tracking
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Order received"
	case StatusPaid:
		return "Payment confirmed"
	case StatusPacking:
		return "Being prepared by the producer"
	case StatusShipped:
		return "On its way"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Item represents a line item in an order. Title, price and weight are
// snapshots taken at checkout; later catalog edits never touch them.
type Item struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Title      string    `gorm:"type:varchar(200);not null" json:"title"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price"`
	UnitWeight int64     `gorm:"not null" json:"unit_weight"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	LineTotal  int64     `gorm:"not null" json:"line_total"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// ItemSpec carries the catalog snapshot the order creator builds a line
// item from
type ItemSpec struct {
	ProductID  uuid.UUID
	Title      string
	UnitPrice  int64
	UnitWeight int64
	Quantity   int64
}

// Order represents a placed order, the aggregate root of the order
// lifecycle. Orders are never deleted, only transitioned.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber     string                        `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProducerID      uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Items           []Item                        `gorm:"foreignKey:OrderID;references:ID"`
	Address         valueobject.ShippingAddress   `gorm:"type:jsonb"`
	Status          Status                        `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Subtotal        int64                         `gorm:"not null"`
	ShippingCost    int64                         `gorm:"not null"`
	ShippingCarrier string                        `gorm:"type:varchar(50);not null"`
	ShippingETADays int                           `gorm:"not null"`
	ShippingRegion  string                        `gorm:"type:varchar(50);not null"`
	Total           int64                         `gorm:"not null"`
	TrackingToken   string                        `gorm:"type:varchar(64);not null;uniqueIndex"`
	PaidAt          *time.Time
	PackedAt        *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CancelReason    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order from catalog snapshots and a shipping
// quote. The order starts in PENDING with a fresh tracking token.
func NewOrder(orderNumber string, producerID uuid.UUID, address valueobject.ShippingAddress, specs []ItemSpec, quote shipping.Quote) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if producerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCER", "Producer ID cannot be empty")
	}
	if address.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping address is required")
	}
	if len(specs) == 0 {
		return nil, shared.ErrEmptyCart
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		ProducerID:        producerID,
		Address:           address,
		Status:            StatusPending,
		ShippingCost:      quote.Cost,
		ShippingCarrier:   quote.Carrier,
		ShippingETADays:   quote.ETADays,
		ShippingRegion:    quote.Region,
		TrackingToken:     uuid.NewString(),
		Items:             make([]Item, 0, len(specs)),
	}

	var subtotal int64
	for _, spec := range specs {
		if spec.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if spec.Title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Item title snapshot cannot be empty")
		}
		if spec.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if spec.UnitPrice < 0 {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		if spec.UnitWeight <= 0 {
			return nil, shared.NewDomainError("INVALID_WEIGHT", "Unit weight must be positive")
		}

		lineTotal := spec.UnitPrice * spec.Quantity
		order.Items = append(order.Items, Item{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  spec.ProductID,
			Title:      spec.Title,
			UnitPrice:  spec.UnitPrice,
			UnitWeight: spec.UnitWeight,
			Quantity:   spec.Quantity,
			LineTotal:  lineTotal,
			CreatedAt:  order.CreatedAt,
		})
		subtotal += lineTotal
	}

	order.Subtotal = subtotal
	order.Total = subtotal + quote.Cost

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// Transition moves the order to the target status, enforcing the state
// machine. Illegal moves fail without modifying the order. The reason is
// recorded only for cancellations.
func (o *Order) Transition(target Status, reason string) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewIllegalTransitionError(o.Status.String(), target.String())
	}

	from := o.Status
	now := time.Now()
	o.Status = target
	o.UpdatedAt = now
	o.IncrementVersion()

	switch target {
	case StatusPaid:
		o.PaidAt = &now
	case StatusPacking:
		o.PackedAt = &now
	case StatusShipped:
		o.ShippedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		o.CancelledAt = &now
		o.CancelReason = reason
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, target, reason))

	return nil
}

// MarkPaid transitions the order to PAID
func (o *Order) MarkPaid() error {
	return o.Transition(StatusPaid, "")
}

// MarkPacking transitions the order to PACKING
func (o *Order) MarkPacking() error {
	return o.Transition(StatusPacking, "")
}

// MarkShipped transitions the order to SHIPPED
func (o *Order) MarkShipped() error {
	return o.Transition(StatusShipped, "")
}

// MarkDelivered transitions the order to DELIVERED
func (o *Order) MarkDelivered() error {
	return o.Transition(StatusDelivered, "")
}

// Cancel transitions the order to CANCELLED. The caller is responsible
// for restocking every line in the same transaction as the status write.
func (o *Order) Cancel(reason string) error {
	return o.Transition(StatusCancelled, reason)
}

// TotalWeight returns the total parcel weight in grams
func (o *Order) TotalWeight() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitWeight * item.Quantity
	}
	return total
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// SubtotalMoney returns the items subtotal as Money
func (o *Order) SubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.Subtotal)
}

// TotalMoney returns the grand total as Money
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.Total)
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// IsTerminal returns true if the order is delivered or cancelled
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}
