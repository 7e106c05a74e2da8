package partner

import (
	"strings"
	"time"

	"github.com/farmbasket/backend/internal/domain/shared"
)

// ProducerStatus represents the status of a producer
type ProducerStatus string

const (
	ProducerStatusActive    ProducerStatus = "active"
	ProducerStatusInactive  ProducerStatus = "inactive"
	ProducerStatusSuspended ProducerStatus = "suspended" // Suspended due to quality or fulfillment issues
)

// Producer represents a farm or food maker selling through the marketplace.
// It is the aggregate root for producer-related operations.
// Every order ships from exactly one producer, so orders and products
// reference producers by ID.
type Producer struct {
	shared.BaseAggregateRoot
	Code        string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string         `gorm:"type:varchar(200);not null"`
	Region      string         `gorm:"type:varchar(100)"`
	Status      ProducerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName string         `gorm:"type:varchar(100)"`
	Phone       string         `gorm:"type:varchar(50);index"`
	Email       string         `gorm:"type:varchar(200);index"`
	Notes       string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Producer) TableName() string {
	return "producers"
}

// NewProducer creates a new producer with required fields
func NewProducer(code, name string) (*Producer, error) {
	if err := validateProducerCode(code); err != nil {
		return nil, err
	}
	if err := validateProducerName(name); err != nil {
		return nil, err
	}

	producer := &Producer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            ProducerStatusActive,
	}

	producer.AddDomainEvent(NewProducerCreatedEvent(producer))

	return producer, nil
}

// Update updates the producer's basic information
func (p *Producer) Update(name, region string) error {
	if err := validateProducerName(name); err != nil {
		return err
	}
	if region != "" && len(region) > 100 {
		return shared.NewDomainError("INVALID_REGION", "Region cannot exceed 100 characters")
	}

	p.Name = name
	p.Region = region
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProducerUpdatedEvent(p))

	return nil
}

// SetContact sets the producer's contact information
func (p *Producer) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	p.ContactName = contactName
	p.Phone = phone
	p.Email = email
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetNotes sets the producer's notes
func (p *Producer) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the producer
func (p *Producer) Activate() error {
	if p.Status == ProducerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Producer is already active")
	}

	oldStatus := p.Status
	p.Status = ProducerStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProducerStatusChangedEvent(p, oldStatus, ProducerStatusActive))

	return nil
}

// Deactivate deactivates the producer
func (p *Producer) Deactivate() error {
	if p.Status == ProducerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Producer is already inactive")
	}

	oldStatus := p.Status
	p.Status = ProducerStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProducerStatusChangedEvent(p, oldStatus, ProducerStatusInactive))

	return nil
}

// Suspend suspends the producer (e.g., due to repeated fulfillment issues)
func (p *Producer) Suspend() error {
	if p.Status == ProducerStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Producer is already suspended")
	}

	oldStatus := p.Status
	p.Status = ProducerStatusSuspended
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProducerStatusChangedEvent(p, oldStatus, ProducerStatusSuspended))

	return nil
}

// IsActive returns true if the producer is active
func (p *Producer) IsActive() bool {
	return p.Status == ProducerStatusActive
}

// IsSuspended returns true if the producer is suspended
func (p *Producer) IsSuspended() bool {
	return p.Status == ProducerStatusSuspended
}

// Validation functions

func validateProducerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Producer code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Producer code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Producer code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProducerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Producer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Producer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email must contain @")
	}
	return nil
}
