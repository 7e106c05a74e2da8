package order

import (
	"time"

	"github.com/farmbasket/backend/internal/domain/order"
	"github.com/google/uuid"
)

// UpdateStatusRequest asks for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// ListFilter narrows the admin order listing
type ListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	Status     *order.Status
	ProducerID *uuid.UUID
}

// ItemResponse is one order line in admin responses
type ItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Title      string    `json:"title"`
	UnitPrice  int64     `json:"unit_price"`
	UnitWeight int64     `json:"unit_weight"`
	Quantity   int64     `json:"quantity"`
	LineTotal  int64     `json:"line_total"`
}

// AddressResponse is the shipping destination in admin responses
type AddressResponse struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
}

// Response is the full admin view of an order
type Response struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	ProducerID      uuid.UUID       `json:"producer_id"`
	Status          string          `json:"status"`
	Items           []ItemResponse  `json:"items"`
	Address         AddressResponse `json:"address"`
	Subtotal        int64           `json:"subtotal"`
	ShippingCost    int64           `json:"shipping_cost"`
	ShippingCarrier string          `json:"shipping_carrier"`
	ShippingETADays int             `json:"shipping_eta_days"`
	ShippingRegion  string          `json:"shipping_region"`
	Total           int64           `json:"total"`
	TrackingToken   string          `json:"tracking_token"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	PackedAt        *time.Time      `json:"packed_at,omitempty"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}

// ListItemResponse is the condensed listing row
type ListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	ProducerID  uuid.UUID `json:"producer_id"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	Total       int64     `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrackingItemResponse is the buyer-facing line item projection
type TrackingItemResponse struct {
	Title    string `json:"title"`
	Quantity int64  `json:"quantity"`
}

// TrackingResponse is the public tracking projection
type TrackingResponse struct {
	OrderNumber string                 `json:"order_number"`
	Status      string                 `json:"status"`
	StatusLabel string                 `json:"status_label"`
	Carrier     string                 `json:"carrier"`
	ETADays     int                    `json:"eta_days"`
	Items       []TrackingItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ToResponse maps an order to its full admin response
func ToResponse(o *order.Order) Response {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Title:      item.Title,
			UnitPrice:  item.UnitPrice,
			UnitWeight: item.UnitWeight,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		})
	}
	return Response{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		ProducerID:      o.ProducerID,
		Status:          o.Status.String(),
		Items:           items,
		Address: AddressResponse{
			Name:       o.Address.Name(),
			Line1:      o.Address.Line1(),
			City:       o.Address.City(),
			PostalCode: o.Address.PostalCode(),
			Phone:      o.Address.Phone(),
			Email:      o.Address.Email(),
		},
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		ShippingCarrier: o.ShippingCarrier,
		ShippingETADays: o.ShippingETADays,
		ShippingRegion:  o.ShippingRegion,
		Total:           o.Total,
		TrackingToken:   o.TrackingToken,
		CancelReason:    o.CancelReason,
		CreatedAt:       o.CreatedAt,
		PaidAt:          o.PaidAt,
		PackedAt:        o.PackedAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
		CancelledAt:     o.CancelledAt,
	}
}

// ToListItemResponses maps orders to condensed listing rows
func ToListItemResponses(orders []order.Order) []ListItemResponse {
	out := make([]ListItemResponse, 0, len(orders))
	for idx := range orders {
		o := &orders[idx]
		out = append(out, ListItemResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			ProducerID:  o.ProducerID,
			Status:      o.Status.String(),
			ItemCount:   o.ItemCount(),
			Total:       o.Total,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out
}

// ToTrackingResponse maps an order to the public tracking projection.
// Deliberately omits address, totals and internal IDs.
func ToTrackingResponse(o *order.Order) TrackingResponse {
	items := make([]TrackingItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, TrackingItemResponse{
			Title:    item.Title,
			Quantity: item.Quantity,
		})
	}
	return TrackingResponse{
		OrderNumber: o.OrderNumber,
		Status:      o.Status.String(),
		StatusLabel: o.Status.Label(),
		Carrier:     o.ShippingCarrier,
		ETADays:     o.ShippingETADays,
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}
