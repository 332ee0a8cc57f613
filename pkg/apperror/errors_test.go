package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WDR_001", "Insufficient available balance", http.StatusPaymentRequired),
			expected: "[WDR_001] Insufficient available balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WDR_002", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestWithdrawalErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientBalance", ErrInsufficientBalance(), "WDR_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "WDR_002", 400},
		{"AmountBelowMinimum", ErrAmountBelowMinimum(10), "WDR_003", 400},
		{"AmountAboveMaximum", ErrAmountAboveMaximum(1000), "WDR_003", 400},
		{"DailyLimitExceeded", ErrDailyLimitExceeded(2000), "WDR_004", 422},
		{"MonthlyLimitExceeded", ErrMonthlyLimitExceeded(5000), "WDR_004", 422},
		{"WithdrawalNotPending", ErrWithdrawalNotPending(), "WDR_005", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWithdrawalErrors_BoundInMessage(t *testing.T) {
	assert.Contains(t, ErrAmountBelowMinimum(10).Message, "10")
	assert.Contains(t, ErrAmountAboveMaximum(5000).Message, "5000")
	assert.Contains(t, ErrDailyLimitExceeded(2000).Message, "2000")
}

func TestPaymentMethodErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidPaymentMethod", ErrInvalidPaymentMethod(), "PM_001", 400},
		{"UnsupportedMethodType", ErrUnsupportedMethodType("iban"), "PM_002", 400},
		{"MissingMethodDetail", ErrMissingMethodDetail("bank", "account_number"), "PM_003", 400},
		{"MethodInUse", ErrMethodInUse(), "PM_004", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"EmailExists", ErrEmailExists(), "AUTH_002", 409},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", 401},
		{"AccountSuspended", ErrAccountSuspended(), "AUTH_004", 403},
		{"OperatorOnly", ErrOperatorOnly(), "AUTH_005", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotFoundNamesEntity(t *testing.T) {
	err := ErrNotFound("withdrawal request")
	assert.Equal(t, "RES_001", err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "withdrawal request not found", err.Message)
}
