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

// ---- Withdrawal workflow (WDR) ----

func ErrInsufficientBalance() *AppError {
	return New("WDR_001", "Insufficient available balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("WDR_002", "Invalid amount", http.StatusBadRequest)
}

func ErrAmountBelowMinimum(min int64) *AppError {
	return New("WDR_003", fmt.Sprintf("Amount is below the minimum of %d for your verification tier", min), http.StatusBadRequest)
}

func ErrAmountAboveMaximum(max int64) *AppError {
	return New("WDR_003", fmt.Sprintf("Amount exceeds the maximum of %d for your verification tier", max), http.StatusBadRequest)
}

func ErrDailyLimitExceeded(limit int64) *AppError {
	return New("WDR_004", fmt.Sprintf("Daily withdrawal limit of %d exceeded", limit), http.StatusUnprocessableEntity)
}

func ErrMonthlyLimitExceeded(limit int64) *AppError {
	return New("WDR_004", fmt.Sprintf("Monthly withdrawal limit of %d exceeded", limit), http.StatusUnprocessableEntity)
}

func ErrWithdrawalNotPending() *AppError {
	return New("WDR_005", "Withdrawal request is no longer pending", http.StatusConflict)
}

// ---- Payment methods (PM) ----

func ErrInvalidPaymentMethod() *AppError {
	return New("PM_001", "Invalid payment method", http.StatusBadRequest)
}

func ErrUnsupportedMethodType(methodType string) *AppError {
	return New("PM_002", fmt.Sprintf("Unsupported payment method type: %s", methodType), http.StatusBadRequest)
}

func ErrMissingMethodDetail(methodType, field string) *AppError {
	return New("PM_003", fmt.Sprintf("Payment method type %s requires field %q", methodType, field), http.StatusBadRequest)
}

func ErrMethodInUse() *AppError {
	return New("PM_004", "Payment method is referenced by a pending withdrawal", http.StatusConflict)
}

// ---- Generic resource / validation ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a generic validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrEmailExists() *AppError {
	return New("AUTH_002", "Email already registered", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAccountSuspended() *AppError {
	return New("AUTH_004", "Account is suspended", http.StatusForbidden)
}

func ErrOperatorOnly() *AppError {
	return New("AUTH_005", "Operator role required", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}
