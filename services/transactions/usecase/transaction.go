package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// ListTransactions returns one page of the actor's filtered set together
// with totals computed over the entire filtered set. Non-staff actors only
// ever see their own transactions.
func (uc *TransactionUC) ListTransactions(ctx context.Context, actor models.Actor, filter models.TransactionFilter, page int) (*models.TransactionPage, error) {
	filter.OwnerID = visibleOwner(actor)
	if page < 1 {
		page = 1
	}

	totals, err := uc.repo.Totals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	count := totals.TotalTransactions
	totalPages := (count + PageSize - 1) / PageSize

	results, err := uc.repo.List(ctx, filter, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &models.TransactionPage{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    PageSize,
		Results:     results,
		Totals:      *totals,
	}, nil
}

// CreateTransaction validates and persists a single transaction owned by the
// actor.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, actor models.Actor, req models.CreateTransactionRequest) (*models.Transaction, error) {
	transaction, err := uc.buildTransaction(actor, req)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

// CreateTransactionBatch validates every record up front and persists them
// atomically: one invalid record rejects the whole batch before anything is
// written.
func (uc *TransactionUC) CreateTransactionBatch(ctx context.Context, actor models.Actor, reqs []models.CreateTransactionRequest) ([]*models.Transaction, error) {
	if len(reqs) == 0 {
		return nil, models.NewValidationError("Transaction list cannot be empty.")
	}

	batch := make([]*models.Transaction, 0, len(reqs))
	for i, req := range reqs {
		transaction, err := uc.buildTransaction(actor, req)
		if err != nil {
			return nil, models.NewValidationError(fmt.Sprintf("Transaction %d: %v", i+1, err))
		}
		batch = append(batch, transaction)
	}

	if err := uc.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to create transaction batch: %w", err)
	}
	return batch, nil
}

// UpdateTransaction applies a partial update to a transaction visible to the
// actor. Rows owned by other users are reported as not found.
func (uc *TransactionUC) UpdateTransaction(ctx context.Context, actor models.Actor, id uuid.UUID, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := uc.visibleTransaction(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *req.Amount
	}
	if req.Category != nil {
		if err := uc.validateCategory(*req.Category); err != nil {
			return nil, err
		}
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.IsRecurring != nil {
		transaction.IsRecurring = *req.IsRecurring
	}

	if err := uc.repo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction visible to the actor.
func (uc *TransactionUC) DeleteTransaction(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if _, err := uc.visibleTransaction(ctx, actor, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// visibleTransaction fetches a transaction and hides rows the actor may not
// touch behind ErrNotFound.
func (uc *TransactionUC) visibleTransaction(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff && transaction.UserID != actor.UserID {
		return nil, models.ErrNotFound
	}
	return transaction, nil
}

func (uc *TransactionUC) buildTransaction(actor models.Actor, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Date == nil {
		return nil, models.NewValidationError("Date is required.")
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := uc.validateCategory(req.Category); err != nil {
		return nil, err
	}

	return &models.Transaction{
		UserID:      actor.UserID,
		Date:        *req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
	}, nil
}

func (uc *TransactionUC) validateCategory(category string) error {
	if !uc.cfg.Categories.Contains(category) {
		return models.NewValidationError(fmt.Sprintf("Invalid category %q.", category))
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return models.NewValidationError("Amount must be greater than zero.")
	}
	return nil
}

// visibleOwner narrows the filter to the actor's own rows unless the actor
// is staff.
func visibleOwner(actor models.Actor) *uuid.UUID {
	if actor.IsStaff {
		return nil
	}
	owner := actor.UserID
	return &owner
}
