package usecase

import (
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/services/transactions"
)

// PageSize is the fixed number of results per listing page.
const PageSize = 20

// TransactionUC implements the transaction usecase
type TransactionUC struct {
	cfg  *models.Config
	repo transactions.TransactionRepo
	aiGW transactions.AIGW
}

// NewTransactionUC creates a new transaction usecase
func NewTransactionUC(cfg *models.Config, repo transactions.TransactionRepo, aiGW transactions.AIGW) *TransactionUC {
	return &TransactionUC{
		cfg:  cfg,
		repo: repo,
		aiGW: aiGW,
	}
}
