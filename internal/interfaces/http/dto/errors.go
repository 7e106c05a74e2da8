package dto

import "net/http"

// Error codes surfaced by the API. Domain errors carry these codes
// directly; the handler layer only maps them to HTTP status.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes.
// Conflict-class codes get 409 so callers can retry with fresh state.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	"EMPTY_CART":          http.StatusBadRequest,
	"MULTI_PRODUCER_CART": http.StatusBadRequest,
	"INVALID_INPUT":       http.StatusBadRequest,

	"INSUFFICIENT_STOCK":   http.StatusConflict,
	"ILLEGAL_TRANSITION":   http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INVALID_STATE":        http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown domain codes are treated as client validation failures.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
