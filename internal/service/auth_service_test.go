package service

import (
	"context"
	"testing"
	"time"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/internal/core/ports/mocks"
	"hosting-billing-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

type authTestDeps struct {
	svc         *AuthServiceImpl
	accountRepo *mocks.MockAccountRepository
	hashSvc     *mocks.MockHashService
	tokenSvc    *mocks.MockTokenService
	ctrl        *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		hashSvc:     mocks.NewMockHashService(ctrl),
		tokenSvc:    mocks.NewMockTokenService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAuthService(d.accountRepo, d.hashSvc, d.tokenSvc, NewAuditService(nil, zerolog.Nop()))
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByEmail(ctx, "owner@example.com").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("s3cret-pass").Return("$argon2id$hash", nil)
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.Register(ctx, ports.RegisterRequest{
		Email:    "Owner@Example.com ",
		Name:     "Site Owner",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "owner@example.com", account.Email)
	assert.Equal(t, domain.RoleCustomer, account.Role)
	assert.Equal(t, domain.TierBasic, account.Tier)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
	assert.Equal(t, int64(0), account.Balance)
	assert.Equal(t, int64(0), account.PendingWithdrawals)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByEmail(ctx, "owner@example.com").Return(&domain.Account{ID: uuid.New()}, nil)

	account, err := d.svc.Register(ctx, ports.RegisterRequest{
		Email:    "owner@example.com",
		Name:     "Site Owner",
		Password: "s3cret-pass",
	})
	assert.Nil(t, account)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "$argon2id$hash",
		Role:         domain.RoleCustomer,
		Status:       domain.AccountStatusActive,
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	d.accountRepo.EXPECT().GetByEmail(ctx, "owner@example.com").Return(account, nil)
	d.hashSvc.EXPECT().Verify("s3cret-pass", "$argon2id$hash").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(account.ID, domain.RoleCustomer).Return("jwt-token", expiresAt, nil)

	token, exp, err := d.svc.Login(ctx, "owner@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiresAt, exp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "$argon2id$hash",
		Status:       domain.AccountStatusActive,
	}

	d.accountRepo.EXPECT().GetByEmail(ctx, "owner@example.com").Return(account, nil)
	d.hashSvc.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	_, _, err := d.svc.Login(ctx, "owner@example.com", "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)

	_, _, err := d.svc.Login(ctx, "nobody@example.com", "whatever")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_SuspendedAccount(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "$argon2id$hash",
		Status:       domain.AccountStatusSuspended,
	}

	d.accountRepo.EXPECT().GetByEmail(ctx, "owner@example.com").Return(account, nil)
	d.hashSvc.EXPECT().Verify("s3cret-pass", "$argon2id$hash").Return(true, nil)

	_, _, err := d.svc.Login(ctx, "owner@example.com", "s3cret-pass")
	assertAppError(t, err, "AUTH_004")
}
