package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// List returns one page of the filtered transaction set with the owning user
// expanded. The filter is expected to be access-narrowed already.
func (r *TransactionRepo) List(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]models.TransactionView, error) {
	where, args := buildFilterClauses(filter)

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT t.id, t.date, t.description, t.amount, t.category, t.is_recurring,
			u.id AS "user.id",
			u.username AS "user.username",
			u.email AS "user.email",
			u.first_name AS "user.first_name",
			u.last_name AS "user.last_name"
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, where, orderClause(filter.Ordering), limitPos, offsetPos)

	views := []models.TransactionView{}
	if err := r.db.SelectContext(ctx, &views, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return views, nil
}

// Totals computes the aggregate block over the whole filtered set. Empty
// sets resolve to zero totals, never an error.
func (r *TransactionRepo) Totals(ctx context.Context, filter models.TransactionFilter) (*models.TransactionTotals, error) {
	where, args := buildFilterClauses(filter)

	args = append(args, r.cfg.Categories.Income)
	incomePos := len(args)

	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(t.amount) FILTER (WHERE t.category = $%d), 0) AS total_income,
			COALESCE(SUM(t.amount) FILTER (WHERE t.category <> $%d), 0) AS total_expenses,
			COUNT(*) AS transaction_count
		FROM transactions t
		%s
	`, incomePos, incomePos, where)

	var totals models.TransactionTotals
	if err := r.db.GetContext(ctx, &totals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	totals.NetAmount = totals.TotalIncome.Sub(totals.TotalExpenses)
	return &totals, nil
}

const insertTransactionQuery = `
	INSERT INTO transactions (id, user_id, date, description, amount, category, is_recurring,
		created_at, updated_at
	) VALUES (:id, :user_id, :date, :description, :amount, :category, :is_recurring,
		:created_at, :updated_at)
`

// Create persists a single transaction.
func (r *TransactionRepo) Create(ctx context.Context, transaction *models.Transaction) error {
	stampNew(transaction)

	if _, err := r.db.NamedExecContext(ctx, insertTransactionQuery, transaction); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// CreateBatch persists all records within a single database transaction;
// a failure on any record rolls back the whole batch.
func (r *TransactionRepo) CreateBatch(ctx context.Context, batch []*models.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, transaction := range batch {
		stampNew(transaction)
		if _, err := tx.NamedExecContext(ctx, insertTransactionQuery, transaction); err != nil {
			return fmt.Errorf("failed to insert transaction batch: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by primary key.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, date, description, amount, category, is_recurring, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var transaction models.Transaction
	err := r.db.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update writes the full mutable field set of an existing transaction.
func (r *TransactionRepo) Update(ctx context.Context, transaction *models.Transaction) error {
	transaction.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE transactions
		SET date = :date, description = :description, amount = :amount,
			category = :category, is_recurring = :is_recurring, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, transaction)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a transaction by primary key.
func (r *TransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListPeriod returns one user's records for a calendar month ordered by date
// ascending, the ordering the report renderer expects.
func (r *TransactionRepo) ListPeriod(ctx context.Context, userID uuid.UUID, year int, month int) ([]models.TransactionRecord, error) {
	start := models.NewDate(year, time.Month(month), 1)
	end := models.Date{Time: start.AddDate(0, 1, 0)}

	query := `
		SELECT date, description, amount, category, is_recurring
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC, id ASC
	`

	records := []models.TransactionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to list period transactions: %w", err)
	}
	return records, nil
}

func stampNew(transaction *models.Transaction) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
}
