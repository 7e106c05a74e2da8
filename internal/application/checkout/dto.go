package checkout

import (
	"time"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/google/uuid"
)

// CheckoutItemRequest is one requested cart line
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required"`
}

// ShippingRequest is the shipping destination submitted at checkout
type ShippingRequest struct {
	Name       string `json:"name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// CheckoutRequest is the full checkout payload
type CheckoutRequest struct {
	Items    []CheckoutItemRequest `json:"items" binding:"required"`
	Shipping ShippingRequest       `json:"shipping" binding:"required"`
}

// OrderItemResponse is one line of a placed order
type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int64     `json:"quantity"`
	LineTotal int64     `json:"line_total"`
}

// OrderResponse is returned after a successful checkout
type OrderResponse struct {
	OrderID         uuid.UUID           `json:"order_id"`
	OrderNumber     string              `json:"order_number"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        int64               `json:"subtotal"`
	ShippingCost    int64               `json:"shipping_cost"`
	ShippingCarrier string              `json:"shipping_carrier"`
	ShippingETADays int                 `json:"shipping_eta_days"`
	ShippingRegion  string              `json:"shipping_region"`
	Total           int64               `json:"total"`
	TrackingToken   string              `json:"tracking_token"`
	CreatedAt       time.Time           `json:"created_at"`
}

// ToOrderResponse maps a placed order to its checkout response
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return OrderResponse{
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          o.Status.String(),
		Items:           items,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		ShippingCarrier: o.ShippingCarrier,
		ShippingETADays: o.ShippingETADays,
		ShippingRegion:  o.ShippingRegion,
		Total:           o.Total,
		TrackingToken:   o.TrackingToken,
		CreatedAt:       o.CreatedAt,
	}
}

// CartValidationRequest is the payload of the cart validation gate
type CartValidationRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required"`
}

// CartValidationResponse reports the single-producer predicate result
type CartValidationResponse struct {
	Valid      bool       `json:"valid"`
	ProducerID *uuid.UUID `json:"producer_id,omitempty"`
	Code       string     `json:"code,omitempty"`
	Message    string     `json:"message,omitempty"`
}
