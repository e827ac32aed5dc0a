package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// UpdateProfile applies the non-nil fields of the request to the caller's
// profile after validation.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (*models.UserView, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !utils.IsValidEmail(email) {
			return nil, models.NewValidationError("Enter a valid email address.")
		}
		taken, err := uc.userRepo.IsEmailTaken(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.NewValidationError("A user with this email already exists.")
		}
		user.Email = email
	}

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, models.NewValidationError("First name cannot be blank.")
		}
		user.FirstName = name
	}

	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, models.NewValidationError("Last name cannot be blank.")
		}
		user.LastName = name
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	view := user.View()
	return &view, nil
}
