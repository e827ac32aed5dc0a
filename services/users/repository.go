package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/autofinanceai/backend/services/users UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// IsEmailTaken reports whether another user already owns the email.
	IsEmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	Update(ctx context.Context, user *models.User) error
}
