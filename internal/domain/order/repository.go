package order

import (
	"context"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByTrackingToken finds an order by its public tracking token
	FindByTrackingToken(ctx context.Context, token string) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByStatus finds orders in a given status
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Order, error)

	// FindByProducer finds orders belonging to a producer
	FindByProducer(ctx context.Context, producerID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order with its items
	Save(ctx context.Context, order *Order) error

	// UpdateStatus transitions an order with a compare-and-set on the
	// previous status. When target is CANCELLED every line is restocked
	// (stock += quantity) in the same transaction. A lost race returns
	// an illegal-transition error and writes nothing.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, reason string) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders in a given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// GenerateOrderNumber generates the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
