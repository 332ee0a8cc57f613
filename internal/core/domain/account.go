package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole distinguishes portal customers from back-office operators.
type AccountRole string

const (
	RoleCustomer AccountRole = "CUSTOMER"
	RoleOperator AccountRole = "OPERATOR"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// VerificationTier gates withdrawal ceilings per account.
type VerificationTier string

const (
	TierBasic    VerificationTier = "basic"
	TierVerified VerificationTier = "verified"
	TierPremium  VerificationTier = "premium"
)

// Account is a portal user together with its wallet ledger row.
// Balance is the available funds; PendingWithdrawals holds funds reserved
// against in-flight withdrawal requests. Balance never goes negative.
type Account struct {
	ID                 uuid.UUID        `json:"id"`
	Email              string           `json:"email"`
	Name               string           `json:"name"`
	PasswordHash       string           `json:"-"`
	Role               AccountRole      `json:"role"`
	Tier               VerificationTier `json:"tier"`
	Status             AccountStatus    `json:"status"`
	Balance            int64            `json:"balance"` // In currency display units
	PendingWithdrawals int64            `json:"pending_withdrawals"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// IsActive returns true if the account may transact.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsOperator returns true for back-office accounts.
func (a *Account) IsOperator() bool {
	return a.Role == RoleOperator
}
