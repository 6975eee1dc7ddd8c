package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Marketplace Business Logic (MKT) ----

// ErrNotFound signals that a referenced account, offer or trade does
// not exist.
func ErrNotFound(entity string) *AppError {
	return New("MKT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrInvalidInput signals a non-positive quantity/price/amount or a
// negative meter reading.
func ErrInvalidInput(message string) *AppError {
	return New("MKT_002", message, http.StatusBadRequest)
}

// ErrRoleViolation signals an operation the account's role does not
// permit, e.g. offer creation by a consumer.
func ErrRoleViolation(message string) *AppError {
	return New("MKT_003", message, http.StatusForbidden)
}

// ErrStateConflict signals an offer that is inactive, depleted, or
// smaller than the requested quantity.
func ErrStateConflict(message string) *AppError {
	return New("MKT_004", message, http.StatusConflict)
}

// ErrInsufficientFunds signals a buyer balance below the required total.
func ErrInsufficientFunds() *AppError {
	return New("MKT_005", "Insufficient buyer balance", http.StatusPaymentRequired)
}

// ---- System & Infrastructure (SYS) ----

// ErrDatabaseError wraps a storage failure.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an MKT_002-style validation error.
func Validation(message string) *AppError {
	return New("MKT_002", message, http.StatusBadRequest)
}
