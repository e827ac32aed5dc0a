package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

const updateUserQuery = `
	UPDATE users SET
		email = :email,
		first_name = :first_name,
		last_name = :last_name,
		updated_at = :updated_at
	WHERE id = :id`

// GetByID fetches one user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, username, email, first_name, last_name, is_staff, created_at, updated_at
		FROM users
		WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// IsEmailTaken reports whether a different user already owns the email.
func (r *UserRepo) IsEmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.GetContext(ctx, &taken, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND id <> $2
		)`, email, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return taken, nil
}

// Update persists the mutable profile fields of the user.
func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()

	result, err := r.db.NamedExecContext(ctx, updateUserQuery, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}
