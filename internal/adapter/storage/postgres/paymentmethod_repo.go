package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hosting-billing-portal/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepo implements ports.PaymentMethodRepository.
// Destination details are stored as a JSONB document.
type PaymentMethodRepo struct {
	pool Pool
}

// NewPaymentMethodRepo creates a new PaymentMethodRepo.
func NewPaymentMethodRepo(pool Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

// Create inserts a new payment method.
func (r *PaymentMethodRepo) Create(ctx context.Context, m *domain.PaymentMethod) error {
	details, err := json.Marshal(m.Details)
	if err != nil {
		return fmt.Errorf("marshal method details: %w", err)
	}

	query := `INSERT INTO payment_methods (id, account_id, method_type, details, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.pool.Exec(ctx, query, m.ID, m.AccountID, m.Type, details, m.Active, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID fetches a payment method by its UUID.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMethod, error) {
	query := `SELECT id, account_id, method_type, details, active, created_at
		FROM payment_methods WHERE id = $1`

	m, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get payment method by id: %w", err)
	}
	return m, nil
}

// ListByAccount fetches an account's active payment methods, oldest first.
func (r *PaymentMethodRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.PaymentMethod, error) {
	query := `SELECT id, account_id, method_type, details, active, created_at
		FROM payment_methods WHERE account_id = $1 AND active = TRUE ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var m domain.PaymentMethod
		var details []byte
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Type, &details, &m.Active, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		if err := json.Unmarshal(details, &m.Details); err != nil {
			return nil, fmt.Errorf("unmarshal method details: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment method rows: %w", err)
	}
	return methods, nil
}

// Deactivate soft-deletes a method scoped to its owner. Returns rows affected.
func (r *PaymentMethodRepo) Deactivate(ctx context.Context, accountID, id uuid.UUID) (int64, error) {
	query := `UPDATE payment_methods SET active = FALSE WHERE id = $1 AND account_id = $2 AND active = TRUE`

	tag, err := r.pool.Exec(ctx, query, id, accountID)
	if err != nil {
		return 0, fmt.Errorf("deactivate payment method: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanPaymentMethod scans a single row, mapping no-rows to nil.
func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	m := &domain.PaymentMethod{}
	var details []byte
	err := row.Scan(&m.ID, &m.AccountID, &m.Type, &details, &m.Active, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(details, &m.Details); err != nil {
		return nil, fmt.Errorf("unmarshal method details: %w", err)
	}
	return m, nil
}
