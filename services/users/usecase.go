package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/autofinanceai/backend/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// UpdateProfile applies a partial update to the caller's own profile and
	// returns the updated read shape.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (*models.UserView, error)
}
