package catalog

import (
	"strings"
	"time"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/farmbasket/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusArchived ProductStatus = "archived"
)

// Product represents a producer's listing in the catalog.
// It is the aggregate root for product-related operations.
// Price is stored in minor currency units (cents), weight in grams,
// stock as whole sellable units.
type Product struct {
	shared.BaseAggregateRoot
	Code        string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title       string        `gorm:"type:varchar(200);not null"`
	Description string        `gorm:"type:text"`
	ProducerID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	UnitPrice   int64         `gorm:"not null;default:0"`
	UnitWeight  int64         `gorm:"not null;default:0"`
	Stock       int64         `gorm:"not null;default:0"`
	Status      ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product listing for a producer.
// unitPrice is in minor currency units, unitWeight in grams.
func NewProduct(producerID uuid.UUID, code, title string, unitPrice, unitWeight int64) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductTitle(title); err != nil {
		return nil, err
	}
	if producerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCER", "Product must belong to a producer")
	}
	if unitPrice < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if unitWeight <= 0 {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Unit weight must be positive")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Title:             title,
		ProducerID:        producerID,
		UnitPrice:         unitPrice,
		UnitWeight:        unitWeight,
		Stock:             0,
		Status:            ProductStatusActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(title, description string) error {
	if err := validateProductTitle(title); err != nil {
		return err
	}

	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdatePrice updates the unit price (minor currency units)
func (p *Product) UpdatePrice(unitPrice int64) error {
	if unitPrice < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	oldPrice := p.UnitPrice
	p.UnitPrice = unitPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductPriceChangedEvent(p, oldPrice))

	return nil
}

// UpdateWeight updates the unit weight in grams
func (p *Product) UpdateWeight(unitWeight int64) error {
	if unitWeight <= 0 {
		return shared.NewDomainError("INVALID_WEIGHT", "Unit weight must be positive")
	}

	p.UnitWeight = unitWeight
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStock replaces the available stock level.
// Used by producer restocks and admin corrections; order placement
// decrements stock atomically at the persistence layer instead.
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	oldStock := p.Stock
	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockChangedEvent(p, oldStock))

	return nil
}

// HasStock returns true if at least the requested quantity is available
func (p *Product) HasStock(quantity int64) bool {
	return quantity > 0 && p.Stock >= quantity
}

// Activate makes the product available for checkout
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	if p.Status == ProductStatusArchived {
		return shared.NewDomainError("CANNOT_ACTIVATE", "Cannot activate an archived product")
	}

	oldStatus := p.Status
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, ProductStatusActive))

	return nil
}

// Deactivate hides the product from checkout without archiving it
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	if p.Status == ProductStatusArchived {
		return shared.NewDomainError("CANNOT_DEACTIVATE", "Cannot deactivate an archived product")
	}

	oldStatus := p.Status
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, ProductStatusInactive))

	return nil
}

// Archive permanently retires the product
// An archived product cannot be reactivated
func (p *Product) Archive() error {
	if p.Status == ProductStatusArchived {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Product is already archived")
	}

	oldStatus := p.Status
	p.Status = ProductStatusArchived
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, oldStatus, ProductStatusArchived))

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsArchived returns true if the product is archived
func (p *Product) IsArchived() bool {
	return p.Status == ProductStatusArchived
}

// UnitPriceMoney returns the unit price as a Money value object
func (p *Product) UnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(p.UnitPrice)
}

// validateProductCode validates the product code (SKU)
func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	// Code should be alphanumeric with underscores and hyphens
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateProductTitle validates the product title
func validateProductTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 200 characters")
	}
	return nil
}
