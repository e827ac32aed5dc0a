package http

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
	"github.com/autofinanceai/backend/services/transactions"
)

// errInvalidPeriod rejects out-of-range month or year parameters.
var errInvalidPeriod = errors.New("Invalid month or year parameter")

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	txUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		txUC: txUC,
	}
}

// actorFromContext builds the authenticated actor from the JWT claims the
// middleware stored on the request context.
func actorFromContext(c echo.Context) (models.Actor, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return models.Actor{}, errors.New("missing user identity")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil {
		return models.Actor{}, fmt.Errorf("invalid user identity: %w", err)
	}

	isStaff, _ := c.Get("is_staff").(bool)
	return models.Actor{UserID: userID, IsStaff: isStaff}, nil
}

// writeError maps usecase errors onto the API error taxonomy without leaking
// internals.
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
