package postgres

import (
	"context"
	"testing"
	"time"

	"hosting-billing-portal/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMethod(accountID uuid.UUID) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:        uuid.New(),
		AccountID: accountID,
		Type:      domain.MethodBank,
		Details: map[string]string{
			"account_number": "DE02120300000000202051",
			"bank_name":      "DKB",
			"account_holder": "Site Owner",
		},
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestPaymentMethodRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	m := newTestMethod(uuid.New())

	mock.ExpectExec("INSERT INTO payment_methods").
		WithArgs(m.ID, m.AccountID, m.Type, pgxmock.AnyArg(), m.Active, m.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	m := newTestMethod(uuid.New())

	rows := pgxmock.NewRows([]string{"id", "account_id", "method_type", "details", "active", "created_at"}).
		AddRow(m.ID, m.AccountID, m.Type, []byte(`{"account_number":"DE02120300000000202051","bank_name":"DKB","account_holder":"Site Owner"}`), m.Active, m.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE id").
		WithArgs(m.ID).
		WillReturnRows(rows)

	result, err := repo.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, "DKB", result.Details["bank_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_ListByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	accountID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "account_id", "method_type", "details", "active", "created_at"}).
		AddRow(uuid.New(), accountID, domain.MethodBank, []byte(`{"bank_name":"DKB"}`), true, time.Now()).
		AddRow(uuid.New(), accountID, domain.MethodPayPal, []byte(`{"email":"owner@example.com"}`), true, time.Now())

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE account_id = \\$1 AND active").
		WithArgs(accountID).
		WillReturnRows(rows)

	methods, err := repo.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, domain.MethodBank, methods[0].Type)
	assert.Equal(t, "owner@example.com", methods[1].Details["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_Deactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	accountID := uuid.New()
	id := uuid.New()

	mock.ExpectExec("UPDATE payment_methods SET active = FALSE").
		WithArgs(id, accountID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.Deactivate(context.Background(), accountID, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_Deactivate_NotOwned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	accountID := uuid.New()
	id := uuid.New()

	mock.ExpectExec("UPDATE payment_methods SET active = FALSE").
		WithArgs(id, accountID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	affected, err := repo.Deactivate(context.Background(), accountID, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
