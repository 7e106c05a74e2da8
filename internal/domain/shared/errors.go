package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Cart contains no items")
	ErrMultiProducerCart   = NewDomainError("MULTI_PRODUCER_CART", "Cart items must all belong to a single producer")
)

// NewInsufficientStockError creates an INSUFFICIENT_STOCK error carrying the
// product and shortfall that caused the rejection.
func NewInsufficientStockError(productID string, requested, available int64) *DomainError {
	return &DomainError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("Insufficient stock for product %s: requested %d, available %d", productID, requested, available),
		Details: map[string]any{
			"product_id": productID,
			"requested":  requested,
			"available":  available,
			"shortfall":  requested - available,
		},
	}
}

// NewIllegalTransitionError creates an ILLEGAL_TRANSITION error carrying the
// attempted from/to statuses.
func NewIllegalTransitionError(from, to string) *DomainError {
	return &DomainError{
		Code:    "ILLEGAL_TRANSITION",
		Message: fmt.Sprintf("Cannot transition order from %s to %s", from, to),
		Details: map[string]any{
			"from": from,
			"to":   to,
		},
	}
}
