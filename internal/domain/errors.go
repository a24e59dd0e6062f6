package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewInvalidStateError creates an illegal-transition / stale-replay error
func NewInvalidStateError(message string) *AppError {
	return NewAppError(
		ErrCodeInvalidState,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewAlreadySettledError marks a replayed completion. Callers treat it as
// non-fatal: the money moved exactly once on an earlier invocation.
func NewAlreadySettledError(transactionID string) *AppError {
	return NewAppError(
		ErrCodeAlreadySettled,
		fmt.Sprintf("Transaction %s not found in an eligible state or already settled", transactionID),
		http.StatusConflict,
		nil,
	)
}

// NewInsufficientFundsError creates an insufficient-funds error
func NewInsufficientFundsError(message string) *AppError {
	if message == "" {
		message = "Insufficient balance"
	}
	return NewAppError(
		ErrCodeInsufficientFunds,
		message,
		http.StatusBadRequest,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(
		ErrCodeUnauthorized,
		message,
		http.StatusUnauthorized,
		nil,
	)
}

// NewProviderUnavailableError creates a payment-provider failure error
func NewProviderUnavailableError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeProviderUnavailable,
		fmt.Sprintf("Payment provider operation '%s' failed", operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// NewPersistenceError creates a store failure error; the enclosing logical
// operation has been rolled back when this is returned.
func NewPersistenceError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodePersistence,
		fmt.Sprintf("Store operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// NewInvalidTransactionTypeError rejects a transaction type outside the
// known credit/debit sets.
func NewInvalidTransactionTypeError(transactionType string) *AppError {
	return NewAppError(
		ErrCodeInvalidTransactionType,
		fmt.Sprintf("Unknown transaction type '%s'", transactionType),
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidAmountError creates an invalid-amount error
func NewInvalidAmountError(message string) *AppError {
	return NewAppError(
		ErrCodeInvalidAmount,
		message,
		http.StatusBadRequest,
		nil,
	)
}

// NewInvalidNumbersError rejects a ticket number selection
func NewInvalidNumbersError(message string) *AppError {
	return NewAppError(
		ErrCodeInvalidNumbers,
		message,
		http.StatusBadRequest,
		nil,
	)
}

// NewGameFullError creates a game-at-capacity error
func NewGameFullError() *AppError {
	return NewAppError(
		ErrCodeGameFull,
		"Game is full",
		http.StatusConflict,
		nil,
	)
}

// NewGameNotActiveError creates an inactive-game error
func NewGameNotActiveError() *AppError {
	return NewAppError(
		ErrCodeGameNotActive,
		"Game is not active",
		http.StatusConflict,
		nil,
	)
}

// NewUnderMaintenanceError signals that payouts are suspended because the
// house wallet cannot cover the request.
func NewUnderMaintenanceError() *AppError {
	return NewAppError(
		ErrCodeUnderMaintenance,
		"Withdrawals are temporarily unavailable, please try again later",
		http.StatusServiceUnavailable,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		ErrCodeInternal,
		message,
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAlreadySettled reports whether the error is the non-fatal replay signal
// returned when completing an already-settled transaction.
func IsAlreadySettled(err error) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == ErrCodeAlreadySettled
}

// Error codes for different categories of errors
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInvalidState        = "INVALID_STATE"
	ErrCodeAlreadySettled      = "ALREADY_SETTLED"
	ErrCodeInsufficientFunds   = "INSUFFICIENT_FUNDS"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodePersistence         = "PERSISTENCE_FAILURE"
	ErrCodeInternal            = "INTERNAL_ERROR"

	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"

	ErrCodeDuplicateKey           = "DUPLICATE_KEY"
	ErrCodeInvalidAmount          = "INVALID_AMOUNT"
	ErrCodeInvalidNumbers         = "INVALID_NUMBERS"
	ErrCodeGameFull               = "GAME_FULL"
	ErrCodeGameNotActive          = "GAME_NOT_ACTIVE"
	ErrCodeInvalidTransactionType = "INVALID_TRANSACTION_TYPE"
	ErrCodeUnderMaintenance       = "UNDER_MAINTENANCE"
)
