package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, account_id, payment_method_id, method_type, amount, fee, status, account_details, operator_note, created_at, processed_at`

// Create inserts a new withdrawal request within a database transaction, so
// the request row and the ledger reservation commit together.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (id, account_id, payment_method_id, method_type, amount, fee, status, account_details, operator_note, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.AccountID, w.PaymentMethodID, w.MethodType, w.Amount, w.Fee,
		w.Status, w.AccountDetails, w.OperatorNote, w.CreatedAt, w.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal request: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal request by UUID (without locking).
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`

	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal by id: %w", err)
	}
	return w, nil
}

// GetByAccountAndID fetches a request scoped to its owner.
func (r *WithdrawalRepo) GetByAccountAndID(ctx context.Context, accountID, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 AND account_id = $2`

	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id, accountID))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal by account and id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a withdrawal request with pessimistic locking.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`

	w, err := scanWithdrawal(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal for update: %w", err)
	}
	return w, nil
}

// UpdateStatus moves a request to a terminal status within a transaction and
// stamps processed_at.
func (r *WithdrawalRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.WithdrawalStatus, note *string) error {
	query := `UPDATE withdrawal_requests SET status = $1, operator_note = $2, processed_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, status, note, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update withdrawal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal request not found: %s", id)
	}
	return nil
}

// List fetches withdrawal requests newest-first with filtering and pagination,
// plus the total row count for the filter.
func (r *WithdrawalRepo) List(ctx context.Context, params ports.WithdrawalListParams) ([]domain.WithdrawalRequest, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.AccountID != nil {
		conditions = append(conditions, fmt.Sprintf("account_id = $%d", argIdx))
		args = append(args, *params.AccountID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM withdrawal_requests %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count withdrawals: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM withdrawal_requests %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		withdrawalColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var w domain.WithdrawalRequest
		err := rows.Scan(
			&w.ID, &w.AccountID, &w.PaymentMethodID, &w.MethodType, &w.Amount, &w.Fee,
			&w.Status, &w.AccountDetails, &w.OperatorNote, &w.CreatedAt, &w.ProcessedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan withdrawal row: %w", err)
		}
		requests = append(requests, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate withdrawal rows: %w", err)
	}
	return requests, total, nil
}

// CountPendingByMethod counts PENDING requests targeting a payment method.
func (r *WithdrawalRepo) CountPendingByMethod(ctx context.Context, methodID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM withdrawal_requests WHERE payment_method_id = $1 AND status = 'PENDING'`

	var count int64
	err := r.pool.QueryRow(ctx, query, methodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending by method: %w", err)
	}
	return count, nil
}

// SumReservedSince totals PENDING and APPROVED request amounts created at or
// after the cutoff. Runs inside the caller's transaction so period-limit
// checks see the same snapshot the reservation will commit against.
func (r *WithdrawalRepo) SumReservedSince(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawal_requests
		WHERE account_id = $1 AND status IN ('PENDING', 'APPROVED') AND created_at >= $2`

	var sum int64
	err := tx.QueryRow(ctx, query, accountID, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum reserved since: %w", err)
	}
	return sum, nil
}

// scanWithdrawal scans a single row, mapping no-rows to nil.
func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	w := &domain.WithdrawalRequest{}
	err := row.Scan(
		&w.ID, &w.AccountID, &w.PaymentMethodID, &w.MethodType, &w.Amount, &w.Fee,
		&w.Status, &w.AccountDetails, &w.OperatorNote, &w.CreatedAt, &w.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
