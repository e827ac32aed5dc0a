package transactions

import (
	"context"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/autofinanceai/backend/services/transactions TransactionRepo

// TransactionRepo represents the transaction repository interface
type TransactionRepo interface {
	// List returns one page of the filtered set, already access-narrowed by
	// the filter's owner.
	List(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]models.TransactionView, error)

	// Totals computes the aggregate block over the entire filtered set.
	Totals(ctx context.Context, filter models.TransactionFilter) (*models.TransactionTotals, error)

	Create(ctx context.Context, transaction *models.Transaction) error

	// CreateBatch persists all records in one database transaction; either
	// every record is inserted or none is.
	CreateBatch(ctx context.Context, batch []*models.Transaction) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPeriod returns a user's records for one calendar month ordered by
	// date ascending.
	ListPeriod(ctx context.Context, userID uuid.UUID, year int, month int) ([]models.TransactionRecord, error)
}
