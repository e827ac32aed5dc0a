package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// TransactionRepo implements the transaction repository against PostgreSQL
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}
