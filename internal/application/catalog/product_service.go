package catalog

import (
	"context"

	"github.com/farmbasket/backend/internal/domain/catalog"
	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockAdjuster applies a signed stock delta with the same conditional
// update guard checkout uses: the write fails instead of letting stock
// go negative.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (int64, error)
}

// ProductService handles product back-office operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	producerRepo   partner.ProducerRepository
	stockAdjuster  StockAdjuster
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, producerRepo partner.ProducerRepository, stockAdjuster StockAdjuster) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		producerRepo:  producerRepo,
		stockAdjuster: stockAdjuster,
	}
}

// SetEventPublisher sets the event publisher
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product listing
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	producer, err := s.producerRepo.FindByID(ctx, req.ProducerID)
	if err != nil {
		return nil, err
	}
	if !producer.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot list products for an inactive producer")
	}

	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product code already in use")
	}

	product, err := catalog.NewProduct(req.ProducerID, req.Code, req.Title, req.UnitPrice, req.UnitWeight)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := product.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}
	if req.InitialStock > 0 {
		if err := product.SetStock(req.InitialStock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
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
	if filter.ProducerID != nil {
		domainFilter.Filters["producer_id"] = *filter.ProducerID
	}
	if filter.ActiveOnly {
		domainFilter.Filters["status"] = string(catalog.ProductStatusActive)
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product's listing fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil {
		title := product.Title
		description := product.Description
		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(title, description); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := product.UpdatePrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.UnitWeight != nil {
		if err := product.UpdateWeight(*req.UnitWeight); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock shifts the product stock by a signed delta through the
// conditional-update path. Oversubtracting fails with the insufficient
// stock error instead of clamping.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	if req.Delta == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock delta cannot be zero")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStock, err := s.stockAdjuster.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		return nil, err
	}

	product.Stock = newStock
	response := ToProductResponse(product)
	return &response, nil
}

// Activate makes a product available for checkout
func (s *ProductService) Activate(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Activate)
}

// Deactivate hides a product from checkout
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Deactivate)
}

// Archive permanently retires a product
func (s *ProductService) Archive(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Archive)
}

func (s *ProductService) changeStatus(ctx context.Context, id uuid.UUID, change func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	product.ClearDomainEvents()
}
