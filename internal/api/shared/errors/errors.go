package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest          ErrorCode = "bad_request"
	ErrCodeNotFound            ErrorCode = "not_found"
	ErrCodeValidationFailed    ErrorCode = "validation_failed"
	ErrCodeInsufficientSupply  ErrorCode = "insufficient_supply"
	ErrCodeInsufficientBalance ErrorCode = "insufficient_balance"
	ErrCodeConflict            ErrorCode = "conflict"
	ErrCodeAlreadyExists       ErrorCode = "already_exists"
	ErrCodeLedgerRejected      ErrorCode = "ledger_rejected"

	// Server errors (5xx)
	ErrCodeInternalError     ErrorCode = "internal_error"
	ErrCodeLedgerUnavailable ErrorCode = "ledger_unavailable"
	ErrCodeLedgerDisabled    ErrorCode = "ledger_disabled"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newError(code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details...)
}

// FromError maps a domain error to its HTTP status and API error.
// Specific causes are checked before the ledger wrappers, so a contract rejection for an
// insufficient supply reports the supply problem.
func FromError(err error) (int, *APIError) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadRequest, apiErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, NewValidationError(err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Resource not found", err.Error())
	case errors.Is(err, domain.ErrInsufficientSupply):
		return http.StatusUnprocessableEntity, newError(ErrCodeInsufficientSupply, "Insufficient supply", err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, newError(ErrCodeInsufficientBalance, "Insufficient balance", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, newError(ErrCodeConflict, "Settlement conflict", err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, newError(ErrCodeAlreadyExists, "Already exists", err.Error())
	case errors.Is(err, domain.ErrLedgerDisabled):
		return http.StatusServiceUnavailable, newError(ErrCodeLedgerDisabled, "Ledger disabled", err.Error())
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, newError(ErrCodeLedgerUnavailable, "Ledger unavailable", err.Error())
	case errors.Is(err, domain.ErrLedgerRejected):
		return http.StatusUnprocessableEntity, newError(ErrCodeLedgerRejected, "Ledger rejected the transaction", err.Error())
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}
