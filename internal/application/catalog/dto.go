package catalog

import (
	"time"

	"github.com/farmbasket/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductRequest creates a new listing
type CreateProductRequest struct {
	Code         string    `json:"code" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	ProducerID   uuid.UUID `json:"producer_id" binding:"required"`
	UnitPrice    int64     `json:"unit_price"`
	UnitWeight   int64     `json:"unit_weight" binding:"required"`
	InitialStock int64     `json:"initial_stock"`
}

// UpdateProductRequest updates listing fields; nil means unchanged
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	UnitPrice   *int64  `json:"unit_price"`
	UnitWeight  *int64  `json:"unit_weight"`
}

// AdjustStockRequest shifts the stock level by a signed delta
type AdjustStockRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// ProductListFilter narrows the product listing
type ProductListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	ProducerID *uuid.UUID
	ActiveOnly bool
	Search     string
}

// ProductResponse is the API view of a product
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ProducerID  uuid.UUID `json:"producer_id"`
	UnitPrice   int64     `json:"unit_price"`
	UnitWeight  int64     `json:"unit_weight"`
	Stock       int64     `json:"stock"`
	Status      string    `json:"status"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse maps a product to its API view
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Title:       p.Title,
		Description: p.Description,
		ProducerID:  p.ProducerID,
		UnitPrice:   p.UnitPrice,
		UnitWeight:  p.UnitWeight,
		Stock:       p.Stock,
		Status:      string(p.Status),
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses maps a product slice to API views
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for idx := range products {
		out = append(out, ToProductResponse(&products[idx]))
	}
	return out
}
