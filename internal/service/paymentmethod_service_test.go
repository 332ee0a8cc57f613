package service

import (
	"context"
	"testing"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type methodTestDeps struct {
	svc            *PaymentMethodServiceImpl
	methodRepo     *mocks.MockPaymentMethodRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
	ctrl           *gomock.Controller
}

func setupMethodService(t *testing.T) *methodTestDeps {
	ctrl := gomock.NewController(t)
	d := &methodTestDeps{
		methodRepo:     mocks.NewMockPaymentMethodRepository(ctrl),
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewPaymentMethodService(d.methodRepo, d.withdrawalRepo, NewAuditService(nil, zerolog.Nop()), zerolog.Nop())
	return d
}

func TestPaymentMethodService_Add_Bank(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.methodRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	method, err := d.svc.Add(ctx, accountID, domain.MethodBank, map[string]string{
		"account_number": "DE02120300000000202051",
		"bank_name":      "DKB",
		"account_holder": "Site Owner",
	})
	require.NoError(t, err)
	assert.Equal(t, accountID, method.AccountID)
	assert.Equal(t, domain.MethodBank, method.Type)
	assert.True(t, method.Active)
}

func TestPaymentMethodService_Add_UnsupportedType(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	method, err := d.svc.Add(context.Background(), uuid.New(), "cheque", map[string]string{})
	assert.Nil(t, method)
	assertAppError(t, err, "PM_002")
}

func TestPaymentMethodService_Add_MissingDetail(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	// Crypto requires wallet_address and network
	method, err := d.svc.Add(context.Background(), uuid.New(), domain.MethodCrypto, map[string]string{
		"wallet_address": "0xabc",
	})
	assert.Nil(t, method)
	assertAppError(t, err, "PM_003")
	assert.Contains(t, err.Error(), "network")
}

func TestPaymentMethodService_List_RedactsDetails(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()

	d.methodRepo.EXPECT().ListByAccount(ctx, accountID).Return([]domain.PaymentMethod{
		*bankMethod(accountID),
		{
			ID:        uuid.New(),
			AccountID: accountID,
			Type:      domain.MethodPayPal,
			Details:   map[string]string{"email": "john.doe@example.com"},
			Active:    true,
		},
	}, nil)

	summaries, err := d.svc.List(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "DKB ****2051", summaries[0].Label)
	assert.NotContains(t, summaries[0].Label, "DE021203")
	assert.Equal(t, "j***@example.com", summaries[1].Label)
}

func TestPaymentMethodService_Remove_Success(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	methodID := uuid.New()

	d.withdrawalRepo.EXPECT().CountPendingByMethod(ctx, methodID).Return(int64(0), nil)
	d.methodRepo.EXPECT().Deactivate(ctx, accountID, methodID).Return(int64(1), nil)

	err := d.svc.Remove(ctx, accountID, methodID)
	assert.NoError(t, err)
}

func TestPaymentMethodService_Remove_InUse(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	methodID := uuid.New()

	d.withdrawalRepo.EXPECT().CountPendingByMethod(ctx, methodID).Return(int64(2), nil)

	err := d.svc.Remove(ctx, accountID, methodID)
	assertAppError(t, err, "PM_004")
}

func TestPaymentMethodService_Remove_NotOwned(t *testing.T) {
	d := setupMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	methodID := uuid.New()

	d.withdrawalRepo.EXPECT().CountPendingByMethod(ctx, methodID).Return(int64(0), nil)
	d.methodRepo.EXPECT().Deactivate(ctx, accountID, methodID).Return(int64(0), nil)

	err := d.svc.Remove(ctx, accountID, methodID)
	assertAppError(t, err, "RES_001")
}
