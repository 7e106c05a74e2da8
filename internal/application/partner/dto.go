package partner

import (
	"time"

	"github.com/farmbasket/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateProducerRequest registers a new producer
type CreateProducerRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Region      string `json:"region"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// UpdateProducerRequest updates producer fields; nil means unchanged
type UpdateProducerRequest struct {
	Name        *string `json:"name"`
	Region      *string `json:"region"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Notes       *string `json:"notes"`
}

// ProducerListFilter narrows the producer listing
type ProducerListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	ActiveOnly bool
	Search     string
}

// ProducerResponse is the API view of a producer
type ProducerResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Region      string    `json:"region,omitempty"`
	Status      string    `json:"status"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProducerResponse maps a producer to its API view
func ToProducerResponse(p *partner.Producer) ProducerResponse {
	return ProducerResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Region:      p.Region,
		Status:      string(p.Status),
		ContactName: p.ContactName,
		Phone:       p.Phone,
		Email:       p.Email,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProducerResponses maps a producer slice to API views
func ToProducerResponses(producers []partner.Producer) []ProducerResponse {
	out := make([]ProducerResponse, 0, len(producers))
	for idx := range producers {
		out = append(out, ToProducerResponse(&producers[idx]))
	}
	return out
}
