package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// UpdateProfile handles partial updates of the caller's own profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	view, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		if !models.IsValidation(err) {
			logger.Error("Failed to update profile", logger.Err(err))
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}
