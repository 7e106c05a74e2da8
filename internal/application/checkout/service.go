package checkout

import (
	"context"
	"errors"

	"github.com/farmbasket/backend/internal/domain/cart"
	"github.com/farmbasket/backend/internal/domain/catalog"
	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/farmbasket/backend/internal/domain/shared/valueobject"
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/google/uuid"
)

// Store is the transactional boundary of order placement. CreateOrder
// must conditionally decrement stock for every line and persist the
// order atomically: either all decrements succeed and the order exists,
// or nothing is written.
type Store interface {
	CreateOrder(ctx context.Context, o *order.Order) error
}

// Service validates carts and places orders
type Service struct {
	productRepo    catalog.ProductRepository
	orderRepo      order.OrderRepository
	store          Store
	estimator      *shipping.Estimator
	eventPublisher shared.EventPublisher
}

// NewService creates a new checkout service
func NewService(productRepo catalog.ProductRepository, orderRepo order.OrderRepository, store Store, estimator *shipping.Estimator) *Service {
	return &Service{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		store:       store,
		estimator:   estimator,
	}
}

// SetEventPublisher sets the event publisher for notification fan-out
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout places an order from the submitted cart. The client cart is
// untrusted: products are re-read, prices and weights re-snapshotted,
// and the single-producer and stock invariants re-enforced here.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	for _, item := range req.Items {
		if item.ProductID == uuid.Nil || item.Quantity <= 0 {
			return nil, shared.ErrInvalidInput
		}
	}

	address, err := valueobject.NewShippingAddress(
		req.Shipping.Name,
		req.Shipping.Line1,
		req.Shipping.City,
		req.Shipping.PostalCode,
		req.Shipping.Phone,
		valueobject.WithEmail(req.Shipping.Email),
	)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	basket, products, err := s.loadCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := basket.Validate(); err != nil {
		return nil, err
	}

	// Pre-check gives the caller a precise shortfall; the conditional
	// decrement inside the store remains the authoritative guard.
	for _, line := range basket.Lines {
		product := products[line.ProductID]
		if !product.HasStock(line.Quantity) {
			return nil, shared.NewInsufficientStockError(product.ID.String(), line.Quantity, product.Stock)
		}
	}

	specs := make([]order.ItemSpec, 0, len(basket.Lines))
	var totalWeight int64
	for _, line := range basket.Lines {
		product := products[line.ProductID]
		specs = append(specs, order.ItemSpec{
			ProductID:  product.ID,
			Title:      product.Title,
			UnitPrice:  product.UnitPrice,
			UnitWeight: product.UnitWeight,
			Quantity:   line.Quantity,
		})
		totalWeight += product.UnitWeight * line.Quantity
	}

	quote, err := s.estimator.Quote(totalWeight, req.Shipping.PostalCode)
	if err != nil {
		return nil, err
	}

	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(orderNumber, basket.ProducerID(), address, specs, quote)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateOrder(ctx, placed); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, placed)

	response := ToOrderResponse(placed)
	return &response, nil
}

// ValidateCart evaluates the single-producer predicate against the
// current catalog. The UI calls this before offering checkout.
func (s *Service) ValidateCart(ctx context.Context, req CartValidationRequest) (*CartValidationResponse, error) {
	if len(req.Items) == 0 {
		return &CartValidationResponse{
			Valid:   false,
			Code:    shared.ErrEmptyCart.Code,
			Message: shared.ErrEmptyCart.Message,
		}, nil
	}

	basket, _, err := s.loadCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if err := basket.Validate(); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return &CartValidationResponse{
				Valid:   false,
				Code:    domainErr.Code,
				Message: domainErr.Message,
			}, nil
		}
		return nil, err
	}

	producerID := basket.ProducerID()
	return &CartValidationResponse{
		Valid:      true,
		ProducerID: &producerID,
	}, nil
}

// loadCart reads the referenced products and builds the trusted cart.
// Unknown products are not found; inactive products are invalid input.
func (s *Service) loadCart(ctx context.Context, items []CheckoutItemRequest) (cart.Cart, map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return cart.Cart{}, nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for idx := range products {
		byID[products[idx].ID] = &products[idx]
	}

	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return cart.Cart{}, nil, shared.NewDomainError("NOT_FOUND", "Product not found: "+item.ProductID.String())
		}
		if !product.IsActive() {
			return cart.Cart{}, nil, shared.NewDomainError("INVALID_INPUT", "Product is not available: "+product.Code)
		}
		lines = append(lines, cart.Line{
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			UnitPrice:  product.UnitPrice,
			Title:      product.Title,
			ProducerID: product.ProducerID,
		})
	}

	return cart.Cart{Lines: lines}, byID, nil
}

// publishEvents flushes the order's pending events onto the bus.
// Notification dispatch must never fail a placed order, so publish
// errors are swallowed here and logged downstream by the bus.
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
