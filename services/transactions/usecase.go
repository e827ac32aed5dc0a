package transactions

import (
	"context"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/autofinanceai/backend/services/transactions TransactionUC

// TransactionUC represents the transaction usecase interface
type TransactionUC interface {
	// ListTransactions returns one page of the actor's filtered transaction
	// set together with the totals over the whole filtered set.
	ListTransactions(ctx context.Context, actor models.Actor, filter models.TransactionFilter, page int) (*models.TransactionPage, error)

	CreateTransaction(ctx context.Context, actor models.Actor, req models.CreateTransactionRequest) (*models.Transaction, error)

	// CreateTransactionBatch validates every record before persisting the
	// batch atomically; one invalid record rejects the whole batch.
	CreateTransactionBatch(ctx context.Context, actor models.Actor, reqs []models.CreateTransactionRequest) ([]*models.Transaction, error)

	UpdateTransaction(ctx context.Context, actor models.Actor, id uuid.UUID, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, actor models.Actor, id uuid.UUID) error

	// ExtractFromImage turns receipt image bytes into transaction-shaped
	// records. Nothing is persisted.
	ExtractFromImage(ctx context.Context, image []byte, mimeType string) ([]models.ExtractedTransaction, error)

	// AnalyzePeriod produces the AI spending analysis for one calendar month
	// versus the preceding month. Adapter failures surface inside the result,
	// never as an error.
	AnalyzePeriod(ctx context.Context, actor models.Actor, year int, month int) *models.InsightResult

	// MonthlyReportPDF renders the actor's transactions for one calendar
	// month into a PDF document.
	MonthlyReportPDF(ctx context.Context, actor models.Actor, year int, month int) ([]byte, error)
}
