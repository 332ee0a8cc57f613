package ports

import (
	"context"
	"time"

	"hosting-billing-portal/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, role domain.AccountRole) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Role      domain.AccountRole
}

// Notifier dispatches notifications to an account or to the operator role.
// Delivery is fire-and-forget for callers: failures are logged, never retried
// by the workflow.
type Notifier interface {
	NotifyAccount(ctx context.Context, accountID uuid.UUID, n domain.Notification) error
	NotifyOperators(ctx context.Context, n domain.Notification) error
}

// NotificationStore persists the capped in-app notification backlog per target.
type NotificationStore interface {
	Push(ctx context.Context, target string, payload []byte) error
	List(ctx context.Context, target string, limit int64) ([][]byte, error)
}

// AuditService records audited actions asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// AuthService defines portal authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds validated input for account registration.
type RegisterRequest struct {
	Email    string
	Name     string
	Password string
}

// BalanceSnapshot is the ledger state of one account at a point in time.
type BalanceSnapshot struct {
	Balance            int64
	PendingWithdrawals int64
	Currency           string
}

// AccountLimits pairs an account's tier with its withdrawal ceilings.
type AccountLimits struct {
	Tier   domain.VerificationTier
	Limits domain.TierLimits
}

// WalletService defines wallet/ledger business logic.
type WalletService interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceSnapshot, error)
	// GetLimits derives the withdrawal ceilings from the account's
	// verification tier. Pure lookup, no side effects.
	GetLimits(ctx context.Context, accountID uuid.UUID) (*AccountLimits, error)
	// Topup credits the available balance (stand-in for the external payment rail).
	Topup(ctx context.Context, accountID uuid.UUID, amount int64) (*BalanceSnapshot, error)
}

// CreateWithdrawalRequest holds validated input for requesting a withdrawal.
type CreateWithdrawalRequest struct {
	AccountID       uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          int64
	AccountDetails  string
}

// WithdrawalService defines the withdrawal request lifecycle.
type WithdrawalService interface {
	Request(ctx context.Context, req CreateWithdrawalRequest) (*domain.WithdrawalRequest, error)
	Cancel(ctx context.Context, accountID, requestID uuid.UUID) (*domain.WithdrawalRequest, error)
	Get(ctx context.Context, accountID, requestID uuid.UUID) (*domain.WithdrawalRequest, error)
	History(ctx context.Context, params WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error)
	// Approve and Reject are operator-only terminal transitions.
	Approve(ctx context.Context, requestID uuid.UUID, note *string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID uuid.UUID, reason string) (*domain.WithdrawalRequest, error)
}

// PaymentMethodSummary is the redacted listing view of a payment method.
type PaymentMethodSummary struct {
	ID        uuid.UUID                `json:"id"`
	Type      domain.PaymentMethodType `json:"type"`
	Label     string                   `json:"label"`
	CreatedAt time.Time                `json:"created_at"`
}

// PaymentMethodService defines withdrawal-destination management.
type PaymentMethodService interface {
	Add(ctx context.Context, accountID uuid.UUID, methodType domain.PaymentMethodType, details map[string]string) (*domain.PaymentMethod, error)
	List(ctx context.Context, accountID uuid.UUID) ([]PaymentMethodSummary, error)
	Remove(ctx context.Context, accountID, methodID uuid.UUID) error
}
