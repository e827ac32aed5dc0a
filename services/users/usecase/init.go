package usecase

import (
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}
