package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// UserRepo implements the user repository on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
