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

// ---- Validation (VAL) ----

// Validation returns a request validation error. Raised before any store
// access for malformed enums, negative pagination, or missing fields.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Registry & Ledger (REG) ----

func ErrNotFound(entity string) *AppError {
	return New("REG_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletInactive() *AppError {
	return New("REG_002", "Wallet is already deactivated", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// ErrStoreUnavailable wraps a storage failure unrelated to unique
// constraints. Propagated to the caller unchanged; never retried here.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap("SYS_001", "Storage layer unavailable", http.StatusInternalServerError, err)
}

// InternalError wraps any other internal failure.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
