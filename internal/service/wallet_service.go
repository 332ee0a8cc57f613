package service

import (
	"context"
	"fmt"
	"time"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	accountRepo ports.AccountRepository
	transactor  ports.DBTransactor
	notifier    ports.Notifier
	auditSvc    ports.AuditService
	currency    string
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	accountRepo ports.AccountRepository,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	auditSvc ports.AuditService,
	currency string,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		accountRepo: accountRepo,
		transactor:  transactor,
		notifier:    notifier,
		auditSvc:    auditSvc,
		currency:    currency,
		log:         log,
	}
}

// GetAccount fetches the account profile.
func (s *WalletServiceImpl) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	return account, nil
}

// GetBalance returns the ledger pair for an account.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*ports.BalanceSnapshot, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &ports.BalanceSnapshot{
		Balance:            account.Balance,
		PendingWithdrawals: account.PendingWithdrawals,
		Currency:           s.currency,
	}, nil
}

// GetLimits derives the withdrawal ceilings from the account's tier.
func (s *WalletServiceImpl) GetLimits(ctx context.Context, accountID uuid.UUID) (*ports.AccountLimits, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	limits, ok := domain.LimitsForTier(account.Tier)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("no limits configured for tier %q", account.Tier))
	}
	return &ports.AccountLimits{Tier: account.Tier, Limits: limits}, nil
}

// Topup credits the available balance inside a locked transaction.
// Stand-in for the external payment rail crediting hosting revenue.
func (s *WalletServiceImpl) Topup(ctx context.Context, accountID uuid.UUID, amount int64) (*ports.BalanceSnapshot, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if !account.IsActive() {
		return nil, apperror.ErrAccountSuspended()
	}

	newBalance := account.Balance + amount
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, accountID, newBalance, account.PendingWithdrawals); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("amount", amount).
		Int64("balance", newBalance).
		Msg("Wallet topup credited")

	// Post-commit side effects; failures are logged inside the dispatcher.
	_ = s.notifier.NotifyAccount(ctx, accountID, domain.Notification{
		Type:      domain.NotifyWalletTopup,
		Title:     "Balance credited",
		Message:   fmt.Sprintf("Your balance was credited with %d %s.", amount, s.currency),
		Data:      map[string]interface{}{"amount": amount, "balance": newBalance},
		CreatedAt: time.Now().UTC(),
	})

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		AccountID:    &accountID,
		Action:       domain.AuditActionTopup,
		ResourceType: "account",
		ResourceID:   accountID.String(),
		Details:      fmt.Sprintf(`{"amount":%d}`, amount),
		CreatedAt:    time.Now().UTC(),
	})

	return &ports.BalanceSnapshot{
		Balance:            newBalance,
		PendingWithdrawals: account.PendingWithdrawals,
		Currency:           s.currency,
	}, nil
}
