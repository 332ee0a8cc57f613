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

// PaymentMethodServiceImpl implements ports.PaymentMethodService.
type PaymentMethodServiceImpl struct {
	methodRepo     ports.PaymentMethodRepository
	withdrawalRepo ports.WithdrawalRepository
	auditSvc       ports.AuditService
	log            zerolog.Logger
}

// NewPaymentMethodService creates a new PaymentMethodServiceImpl.
func NewPaymentMethodService(
	methodRepo ports.PaymentMethodRepository,
	withdrawalRepo ports.WithdrawalRepository,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *PaymentMethodServiceImpl {
	return &PaymentMethodServiceImpl{
		methodRepo:     methodRepo,
		withdrawalRepo: withdrawalRepo,
		auditSvc:       auditSvc,
		log:            log,
	}
}

// Add registers a withdrawal destination after validating the type-specific
// required fields.
func (s *PaymentMethodServiceImpl) Add(ctx context.Context, accountID uuid.UUID, methodType domain.PaymentMethodType, details map[string]string) (*domain.PaymentMethod, error) {
	if !methodType.Valid() {
		return nil, apperror.ErrUnsupportedMethodType(string(methodType))
	}

	if missing, ok := domain.ValidateMethodDetails(methodType, details); !ok {
		return nil, apperror.ErrMissingMethodDetail(string(methodType), missing)
	}

	method := &domain.PaymentMethod{
		ID:        uuid.New(),
		AccountID: accountID,
		Type:      methodType,
		Details:   details,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment method: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		AccountID:    &accountID,
		Action:       domain.AuditActionMethodAdd,
		ResourceType: "payment_method",
		ResourceID:   method.ID.String(),
		Details:      fmt.Sprintf(`{"type":%q}`, methodType),
		CreatedAt:    method.CreatedAt,
	})

	return method, nil
}

// List returns the account's active destinations with redacted labels. Raw
// details never leave the service layer.
func (s *PaymentMethodServiceImpl) List(ctx context.Context, accountID uuid.UUID) ([]ports.PaymentMethodSummary, error) {
	methods, err := s.methodRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payment methods: %w", err))
	}

	summaries := make([]ports.PaymentMethodSummary, 0, len(methods))
	for i := range methods {
		m := &methods[i]
		summaries = append(summaries, ports.PaymentMethodSummary{
			ID:        m.ID,
			Type:      m.Type,
			Label:     m.Label(),
			CreatedAt: m.CreatedAt,
		})
	}
	return summaries, nil
}

// Remove soft-deletes a destination. A method referenced by a PENDING
// withdrawal cannot be removed until that request settles.
func (s *PaymentMethodServiceImpl) Remove(ctx context.Context, accountID, methodID uuid.UUID) error {
	pending, err := s.withdrawalRepo.CountPendingByMethod(ctx, methodID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("count pending withdrawals: %w", err))
	}
	if pending > 0 {
		return apperror.ErrMethodInUse()
	}

	affected, err := s.methodRepo.Deactivate(ctx, accountID, methodID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("deactivate payment method: %w", err))
	}
	if affected == 0 {
		return apperror.ErrNotFound("payment method")
	}

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		AccountID:    &accountID,
		Action:       domain.AuditActionMethodRemove,
		ResourceType: "payment_method",
		ResourceID:   methodID.String(),
		CreatedAt:    time.Now().UTC(),
	})

	return nil
}
