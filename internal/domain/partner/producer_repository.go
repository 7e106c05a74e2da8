package partner

import (
	"context"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProducerRepository defines the interface for producer persistence
type ProducerRepository interface {
	// FindByID finds a producer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Producer, error)

	// FindByCode finds a producer by its code
	FindByCode(ctx context.Context, code string) (*Producer, error)

	// FindAll finds all producers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Producer, error)

	// FindActive finds all active producers
	FindActive(ctx context.Context, filter shared.Filter) ([]Producer, error)

	// Save creates or updates a producer
	Save(ctx context.Context, producer *Producer) error

	// Delete deletes a producer
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts producers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a producer with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
