package http

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
	"github.com/autofinanceai/backend/services/users"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// callerID extracts the authenticated user's ID from the JWT claims the
// middleware stored on the request context.
func callerID(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("missing user identity")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user identity: %w", err)
	}
	return userID, nil
}

// writeError maps usecase errors onto the API error taxonomy.
func writeError(c echo.Context, err error) error {
	switch {
	case models.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
