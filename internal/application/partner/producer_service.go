package partner

import (
	"context"

	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProducerService handles producer back-office operations
type ProducerService struct {
	producerRepo   partner.ProducerRepository
	eventPublisher shared.EventPublisher
}

// NewProducerService creates a new ProducerService
func NewProducerService(producerRepo partner.ProducerRepository) *ProducerService {
	return &ProducerService{producerRepo: producerRepo}
}

// SetEventPublisher sets the event publisher
func (s *ProducerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new producer
func (s *ProducerService) Create(ctx context.Context, req CreateProducerRequest) (*ProducerResponse, error) {
	exists, err := s.producerRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Producer code already in use")
	}

	producer, err := partner.NewProducer(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Region != "" {
		if err := producer.Update(req.Name, req.Region); err != nil {
			return nil, err
		}
	}
	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := producer.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		producer.SetNotes(req.Notes)
	}

	if err := s.producerRepo.Save(ctx, producer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, producer)

	response := ToProducerResponse(producer)
	return &response, nil
}

// GetByID retrieves a producer by ID
func (s *ProducerService) GetByID(ctx context.Context, id uuid.UUID) (*ProducerResponse, error) {
	producer, err := s.producerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProducerResponse(producer)
	return &response, nil
}

// List retrieves producers with filtering and pagination
func (s *ProducerService) List(ctx context.Context, filter ProducerListFilter) ([]ProducerResponse, int64, error) {
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
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.ActiveOnly {
		domainFilter.Filters["status"] = string(partner.ProducerStatusActive)
	}

	producers, err := s.producerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.producerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProducerResponses(producers), total, nil
}

// Update updates producer fields
func (s *ProducerService) Update(ctx context.Context, id uuid.UUID, req UpdateProducerRequest) (*ProducerResponse, error) {
	producer, err := s.producerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Region != nil {
		name := producer.Name
		region := producer.Region
		if req.Name != nil {
			name = *req.Name
		}
		if req.Region != nil {
			region = *req.Region
		}
		if err := producer.Update(name, region); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := producer.ContactName
		phone := producer.Phone
		email := producer.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := producer.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		producer.SetNotes(*req.Notes)
	}

	if err := s.producerRepo.Save(ctx, producer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, producer)

	response := ToProducerResponse(producer)
	return &response, nil
}

// Activate reinstates a producer
func (s *ProducerService) Activate(ctx context.Context, id uuid.UUID) (*ProducerResponse, error) {
	return s.changeStatus(ctx, id, (*partner.Producer).Activate)
}

// Deactivate retires a producer
func (s *ProducerService) Deactivate(ctx context.Context, id uuid.UUID) (*ProducerResponse, error) {
	return s.changeStatus(ctx, id, (*partner.Producer).Deactivate)
}

// Suspend suspends a producer for quality or fulfillment issues
func (s *ProducerService) Suspend(ctx context.Context, id uuid.UUID) (*ProducerResponse, error) {
	return s.changeStatus(ctx, id, (*partner.Producer).Suspend)
}

func (s *ProducerService) changeStatus(ctx context.Context, id uuid.UUID, change func(*partner.Producer) error) (*ProducerResponse, error) {
	producer, err := s.producerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(producer); err != nil {
		return nil, err
	}

	if err := s.producerRepo.Save(ctx, producer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, producer)

	response := ToProducerResponse(producer)
	return &response, nil
}

func (s *ProducerService) publishEvents(ctx context.Context, producer *partner.Producer) {
	if s.eventPublisher == nil {
		return
	}
	events := producer.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	producer.ClearDomainEvents()
}
