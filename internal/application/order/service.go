package order

import (
	"context"
	"strings"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles order lifecycle operations after checkout
type Service struct {
	orderRepo      order.OrderRepository
	eventPublisher shared.EventPublisher
}

// NewService creates a new order service
func NewService(orderRepo order.OrderRepository) *Service {
	return &Service{orderRepo: orderRepo}
}

// SetEventPublisher sets the event publisher for notification fan-out
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToResponse(o)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) ([]ListItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.ProducerID != nil {
		domainFilter.Filters["producer_id"] = *filter.ProducerID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToListItemResponses(orders), total, nil
}

// UpdateStatus transitions an order to a new status. The domain
// validates the move, then the repository applies it with a
// compare-and-set on the previous status so a concurrent transition
// cannot be overwritten. Cancellations restock inside the repository
// transaction.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Response, error) {
	target := order.Status(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown order status: "+req.Status)
	}

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := o.Status
	if err := o.Transition(target, req.Reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, from, target, req.Reason); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToResponse(o)
	return &response, nil
}

// Track resolves a public tracking token to the buyer-facing projection
func (s *Service) Track(ctx context.Context, token string) (*TrackingResponse, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tracking token is required")
	}

	o, err := s.orderRepo.FindByTrackingToken(ctx, token)
	if err != nil {
		return nil, err
	}

	response := ToTrackingResponse(o)
	return &response, nil
}

func (s *Service) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	o.ClearDomainEvents()
}
