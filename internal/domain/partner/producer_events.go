package partner

import (
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeProducer = "Producer"

// Event type constants
const (
	EventTypeProducerCreated       = "ProducerCreated"
	EventTypeProducerUpdated       = "ProducerUpdated"
	EventTypeProducerStatusChanged = "ProducerStatusChanged"
)

// ProducerCreatedEvent is published when a new producer is created
type ProducerCreatedEvent struct {
	shared.BaseDomainEvent
	ProducerID uuid.UUID `json:"producer_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
}

// NewProducerCreatedEvent creates a new ProducerCreatedEvent
func NewProducerCreatedEvent(producer *Producer) *ProducerCreatedEvent {
	return &ProducerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProducerCreated, AggregateTypeProducer, producer.ID),
		ProducerID:      producer.ID,
		Code:            producer.Code,
		Name:            producer.Name,
	}
}

// ProducerUpdatedEvent is published when a producer is updated
type ProducerUpdatedEvent struct {
	shared.BaseDomainEvent
	ProducerID uuid.UUID `json:"producer_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Region     string    `json:"region,omitempty"`
}

// NewProducerUpdatedEvent creates a new ProducerUpdatedEvent
func NewProducerUpdatedEvent(producer *Producer) *ProducerUpdatedEvent {
	return &ProducerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProducerUpdated, AggregateTypeProducer, producer.ID),
		ProducerID:      producer.ID,
		Code:            producer.Code,
		Name:            producer.Name,
		Region:          producer.Region,
	}
}

// ProducerStatusChangedEvent is published when a producer's status changes
type ProducerStatusChangedEvent struct {
	shared.BaseDomainEvent
	ProducerID uuid.UUID      `json:"producer_id"`
	Code       string         `json:"code"`
	OldStatus  ProducerStatus `json:"old_status"`
	NewStatus  ProducerStatus `json:"new_status"`
}

// NewProducerStatusChangedEvent creates a new ProducerStatusChangedEvent
func NewProducerStatusChangedEvent(producer *Producer, oldStatus, newStatus ProducerStatus) *ProducerStatusChangedEvent {
	return &ProducerStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProducerStatusChanged, AggregateTypeProducer, producer.ID),
		ProducerID:      producer.ID,
		Code:            producer.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
