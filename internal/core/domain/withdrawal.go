package domain

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved  WithdrawalStatus = "APPROVED"
	WithdrawalStatusRejected  WithdrawalStatus = "REJECTED"
	WithdrawalStatusCancelled WithdrawalStatus = "CANCELLED"
)

// ValidWithdrawalStatus reports whether s names a known status.
func ValidWithdrawalStatus(s WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusApproved,
		WithdrawalStatusRejected, WithdrawalStatusCancelled:
		return true
	}
	return false
}

// WithdrawalRequest is a request to move reserved wallet funds to an external
// destination. While PENDING the full amount is held in the account's
// pending_withdrawals counter; the three other states are terminal.
type WithdrawalRequest struct {
	ID              uuid.UUID         `json:"id"`
	AccountID       uuid.UUID         `json:"account_id"`
	PaymentMethodID uuid.UUID         `json:"payment_method_id"`
	MethodType      PaymentMethodType `json:"method_type"` // Snapshot of the destination type
	Amount          int64             `json:"amount"`
	Fee             int64             `json:"fee"`
	Status          WithdrawalStatus  `json:"status"`
	AccountDetails  string            `json:"account_details,omitempty"` // Destination snapshot taken at request time
	OperatorNote    *string           `json:"operator_note,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	ProcessedAt     *time.Time        `json:"processed_at,omitempty"`
}

// IsTerminal returns true once the request has left PENDING.
func (w *WithdrawalRequest) IsTerminal() bool {
	return w.Status != WithdrawalStatusPending
}
