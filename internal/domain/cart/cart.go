package cart

import (
	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Line is one cart entry as the client holds it. Price, title and
// producer are client-side snapshots; checkout re-reads the catalog and
// never trusts them.
type Line struct {
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int64     `json:"quantity"`
	UnitPrice  int64     `json:"unit_price,omitempty"`
	Title      string    `json:"title,omitempty"`
	ProducerID uuid.UUID `json:"producer_id,omitempty"`
}

// Cart is the client-held cart state submitted for validation or checkout
type Cart struct {
	Lines []Line `json:"lines"`
}

// IsEmpty returns true when the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// SingleProducer reports whether every line belongs to one producer.
// An empty cart is not single-producer.
func (c Cart) SingleProducer() bool {
	if c.IsEmpty() {
		return false
	}
	first := c.Lines[0].ProducerID
	for _, line := range c.Lines[1:] {
		if line.ProducerID != first {
			return false
		}
	}
	return true
}

// ProducerID returns the single producer the cart belongs to.
// Returns uuid.Nil when the cart is empty or spans multiple producers.
func (c Cart) ProducerID() uuid.UUID {
	if !c.SingleProducer() {
		return uuid.Nil
	}
	return c.Lines[0].ProducerID
}

// Validate checks the structural invariants a cart must satisfy before
// checkout may proceed: non-empty, positive quantities, one producer.
func (c Cart) Validate() error {
	if c.IsEmpty() {
		return shared.ErrEmptyCart
	}
	for _, line := range c.Lines {
		if line.ProductID == uuid.Nil {
			return shared.ErrInvalidInput
		}
		if line.Quantity <= 0 {
			return shared.ErrInvalidInput
		}
	}
	if !c.SingleProducer() {
		return shared.ErrMultiProducerCart
	}
	return nil
}

// TotalQuantity returns the sum of all line quantities
func (c Cart) TotalQuantity() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}
