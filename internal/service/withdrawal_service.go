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

// WithdrawalServiceImpl implements ports.WithdrawalService.
//
// Every state transition runs inside a single database transaction with the
// affected rows locked FOR UPDATE, so the ledger pair and the request status
// always move together. Lock order is request row first, then account row.
type WithdrawalServiceImpl struct {
	withdrawalRepo ports.WithdrawalRepository
	accountRepo    ports.AccountRepository
	methodRepo     ports.PaymentMethodRepository
	transactor     ports.DBTransactor
	notifier       ports.Notifier
	auditSvc       ports.AuditService
	currency       string
	log            zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	withdrawalRepo ports.WithdrawalRepository,
	accountRepo ports.AccountRepository,
	methodRepo ports.PaymentMethodRepository,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	auditSvc ports.AuditService,
	currency string,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawalRepo: withdrawalRepo,
		accountRepo:    accountRepo,
		methodRepo:     methodRepo,
		transactor:     transactor,
		notifier:       notifier,
		auditSvc:       auditSvc,
		currency:       currency,
		log:            log,
	}
}

// Request validates a withdrawal and reserves its funds atomically.
//
// Preconditions are checked in a fixed order so callers get deterministic
// errors: available balance, then destination ownership, then tier bounds,
// then period ceilings. The full amount is reserved; the fee is informational
// until settlement.
func (s *WithdrawalServiceImpl) Request(ctx context.Context, req ports.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if !account.IsActive() {
		return nil, apperror.ErrAccountSuspended()
	}

	// 1. Available balance
	if account.Balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance()
	}

	// 2. Destination ownership
	method, err := s.methodRepo.GetByID(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if method == nil || method.AccountID != account.ID || !method.Active {
		return nil, apperror.ErrInvalidPaymentMethod()
	}

	// 3. Tier bounds
	limits, ok := domain.LimitsForTier(account.Tier)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("no limits configured for tier %q", account.Tier))
	}
	if req.Amount < limits.MinAmount {
		return nil, apperror.ErrAmountBelowMinimum(limits.MinAmount)
	}
	if req.Amount > limits.MaxAmount {
		return nil, apperror.ErrAmountAboveMaximum(limits.MaxAmount)
	}

	// 4. Period ceilings. Sums run inside the transaction so concurrent
	// requests serialize on the account lock.
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	dailyUsed, err := s.withdrawalRepo.SumReservedSince(ctx, dbTx, account.ID, dayStart)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum daily reserved: %w", err))
	}
	if dailyUsed+req.Amount > limits.DailyLimit {
		return nil, apperror.ErrDailyLimitExceeded(limits.DailyLimit)
	}

	monthlyUsed, err := s.withdrawalRepo.SumReservedSince(ctx, dbTx, account.ID, monthStart)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum monthly reserved: %w", err))
	}
	if monthlyUsed+req.Amount > limits.MonthlyLimit {
		return nil, apperror.ErrMonthlyLimitExceeded(limits.MonthlyLimit)
	}

	details := req.AccountDetails
	if details == "" {
		details = method.Label()
	}

	request := &domain.WithdrawalRequest{
		ID:              uuid.New(),
		AccountID:       account.ID,
		PaymentMethodID: method.ID,
		MethodType:      method.Type,
		Amount:          req.Amount,
		Fee:             domain.WithdrawalFee(req.Amount, method.Type),
		Status:          domain.WithdrawalStatusPending,
		AccountDetails:  details,
		CreatedAt:       now,
	}

	if err := s.withdrawalRepo.Create(ctx, dbTx, request); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}

	// Reserve: funds leave the available balance and wait in pending.
	newBalance := account.Balance - req.Amount
	newPending := account.PendingWithdrawals + req.Amount
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance, newPending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve funds: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", request.ID.String()).
		Str("account_id", account.ID.String()).
		Int64("amount", request.Amount).
		Int64("fee", request.Fee).
		Msg("Withdrawal requested, funds reserved")

	s.notifyTransition(ctx, request, domain.NotifyWithdrawalRequested,
		"Withdrawal requested",
		fmt.Sprintf("Your withdrawal of %d %s is pending review.", request.Amount, s.currency))
	_ = s.notifier.NotifyOperators(ctx, domain.Notification{
		Type:      domain.NotifyWithdrawalRequested,
		Title:     "New withdrawal request",
		Message:   fmt.Sprintf("Account %s requested a withdrawal of %d %s.", account.ID, request.Amount, s.currency),
		Data:      map[string]interface{}{"withdrawal_id": request.ID.String(), "amount": request.Amount},
		CreatedAt: time.Now().UTC(),
	})
	s.audit(ctx, account.ID, domain.AuditActionWithdrawRequest, request)

	return request, nil
}

// Cancel lets the owner withdraw a PENDING request and releases the reserve.
func (s *WithdrawalServiceImpl) Cancel(ctx context.Context, accountID, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	request, err := s.settle(ctx, requestID, domain.WithdrawalStatusCancelled, nil, &accountID)
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, request, domain.NotifyWithdrawalCancelled,
		"Withdrawal cancelled",
		fmt.Sprintf("Your withdrawal of %d %s was cancelled and the funds returned.", request.Amount, s.currency))
	s.audit(ctx, accountID, domain.AuditActionWithdrawCancel, request)
	return request, nil
}

// Get fetches a request scoped to its owner.
func (s *WithdrawalServiceImpl) Get(ctx context.Context, accountID, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	request, err := s.withdrawalRepo.GetByAccountAndID(ctx, accountID, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get withdrawal: %w", err))
	}
	if request == nil {
		return nil, apperror.ErrNotFound("withdrawal request")
	}
	return request, nil
}

// History lists withdrawal requests newest-first.
func (s *WithdrawalServiceImpl) History(ctx context.Context, params ports.WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	requests, total, err := s.withdrawalRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list withdrawals: %w", err))
	}
	return requests, total, nil
}

// Approve settles a PENDING request: the reserved funds leave the ledger
// toward the external payout rail.
func (s *WithdrawalServiceImpl) Approve(ctx context.Context, requestID uuid.UUID, note *string) (*domain.WithdrawalRequest, error) {
	request, err := s.settle(ctx, requestID, domain.WithdrawalStatusApproved, note, nil)
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, request, domain.NotifyWithdrawalApproved,
		"Withdrawal approved",
		fmt.Sprintf("Your withdrawal of %d %s was approved and is being paid out.", request.Amount, s.currency))
	s.audit(ctx, request.AccountID, domain.AuditActionWithdrawApprove, request)
	return request, nil
}

// Reject declines a PENDING request and returns the reserved funds.
func (s *WithdrawalServiceImpl) Reject(ctx context.Context, requestID uuid.UUID, reason string) (*domain.WithdrawalRequest, error) {
	request, err := s.settle(ctx, requestID, domain.WithdrawalStatusRejected, &reason, nil)
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, request, domain.NotifyWithdrawalRejected,
		"Withdrawal rejected",
		fmt.Sprintf("Your withdrawal of %d %s was rejected: %s", request.Amount, s.currency, reason))
	s.audit(ctx, request.AccountID, domain.AuditActionWithdrawReject, request)
	return request, nil
}

// settle performs a terminal transition under locks. When ownerID is non-nil
// the request must belong to that account (customer cancel path). APPROVED
// keeps the reserved funds out of the ledger; CANCELLED and REJECTED return
// them to the available balance.
func (s *WithdrawalServiceImpl) settle(ctx context.Context, requestID uuid.UUID, target domain.WithdrawalStatus, note *string, ownerID *uuid.UUID) (*domain.WithdrawalRequest, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	request, err := s.withdrawalRepo.GetByIDForUpdate(ctx, dbTx, requestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock withdrawal: %w", err))
	}
	if request == nil || (ownerID != nil && request.AccountID != *ownerID) {
		return nil, apperror.ErrNotFound("withdrawal request")
	}
	if request.IsTerminal() {
		return nil, apperror.ErrWithdrawalNotPending()
	}

	account, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, request.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	if err := s.withdrawalRepo.UpdateStatus(ctx, dbTx, request.ID, target, note); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update status: %w", err))
	}

	newBalance := account.Balance
	newPending := account.PendingWithdrawals - request.Amount
	if target != domain.WithdrawalStatusApproved {
		newBalance += request.Amount
	}
	if err := s.accountRepo.UpdateBalance(ctx, dbTx, account.ID, newBalance, newPending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("release reserve: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := time.Now().UTC()
	request.Status = target
	request.OperatorNote = note
	request.ProcessedAt = &now

	s.log.Info().
		Str("withdrawal_id", request.ID.String()).
		Str("account_id", request.AccountID.String()).
		Str("status", string(target)).
		Int64("amount", request.Amount).
		Msg("Withdrawal settled")

	return request, nil
}

func (s *WithdrawalServiceImpl) notifyTransition(ctx context.Context, request *domain.WithdrawalRequest, nType domain.NotificationType, title, message string) {
	_ = s.notifier.NotifyAccount(ctx, request.AccountID, domain.Notification{
		Type:    nType,
		Title:   title,
		Message: message,
		Data: map[string]interface{}{
			"withdrawal_id": request.ID.String(),
			"amount":        request.Amount,
			"status":        string(request.Status),
		},
		CreatedAt: time.Now().UTC(),
	})
}

func (s *WithdrawalServiceImpl) audit(ctx context.Context, accountID uuid.UUID, action domain.AuditAction, request *domain.WithdrawalRequest) {
	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		AccountID:    &accountID,
		Action:       action,
		ResourceType: "withdrawal_request",
		ResourceID:   request.ID.String(),
		Details:      fmt.Sprintf(`{"amount":%d,"status":%q}`, request.Amount, request.Status),
		CreatedAt:    time.Now().UTC(),
	})
}
