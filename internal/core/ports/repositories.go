package ports

import (
	"context"
	"time"

	"hosting-billing-portal/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts and their
// wallet ledger columns.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// UpdateBalance writes the balance/pending_withdrawals pair in one statement.
	// MUST be called within the transaction that locked the row.
	UpdateBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, balance, pendingWithdrawals int64) error
}

// PaymentMethodRepository defines persistence operations for withdrawal destinations.
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *domain.PaymentMethod) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMethod, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.PaymentMethod, error)
	// Deactivate soft-deletes a method scoped to its owner. Returns the number
	// of rows affected (0 when the method does not exist or is not owned).
	Deactivate(ctx context.Context, accountID, id uuid.UUID) (int64, error)
}

// WithdrawalListParams holds filter + pagination for listing withdrawal requests.
type WithdrawalListParams struct {
	AccountID *uuid.UUID // nil = back-office listing across accounts
	Status    *domain.WithdrawalStatus
	Page      int
	PageSize  int
}

// WithdrawalRepository defines persistence operations for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, request *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	GetByAccountAndID(ctx context.Context, accountID, id uuid.UUID) (*domain.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.WithdrawalStatus, note *string) error
	// List returns newest-first pages plus the total row count.
	List(ctx context.Context, params WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error)
	CountPendingByMethod(ctx context.Context, methodID uuid.UUID) (int64, error)
	// SumReservedSince totals PENDING+APPROVED request amounts created at or
	// after the cutoff, for period-limit enforcement inside a transaction.
	SumReservedSince(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, since time.Time) (int64, error)
}

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
