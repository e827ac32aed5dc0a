package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// ListTransactions handles the paginated, filtered transaction listing with
// totals over the whole filtered set.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, page, err := parseListQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.txUC.ListTransactions(c.Request().Context(), actor, filter, page)
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err))
		return writeError(c, err)
	}

	result.Next = pageLink(c, result.CurrentPage+1, result.CurrentPage < result.TotalPages)
	result.Previous = pageLink(c, result.CurrentPage-1, result.CurrentPage > 1)

	return c.JSON(http.StatusOK, result)
}

// CreateTransactions handles creation of a single transaction or an atomic
// batch, selected by the payload being a JSON object or array.
func (h *TransactionHandler) CreateTransactions(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if isJSONArray(body) {
		var reqs []models.CreateTransactionRequest
		if err := json.Unmarshal(body, &reqs); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}

		created, err := h.txUC.CreateTransactionBatch(c.Request().Context(), actor, reqs)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}

	var req models.CreateTransactionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.txUC.CreateTransaction(c.Request().Context(), actor, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTransaction handles partial updates of a single transaction.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.txUC.UpdateTransaction(c.Request().Context(), actor, id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTransaction handles transaction deletion.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.txUC.DeleteTransaction(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseListQuery translates the listing query parameters into a filter.
func parseListQuery(c echo.Context) (models.TransactionFilter, int, error) {
	filter := models.TransactionFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}

	if raw := c.QueryParam("amount_min"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, models.NewValidationError("Invalid amount_min parameter")
		}
		filter.AmountMin = &amount
	}
	if raw := c.QueryParam("amount_max"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, models.NewValidationError("Invalid amount_max parameter")
		}
		filter.AmountMax = &amount
	}
	if raw := c.QueryParam("date_after"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, 0, models.NewValidationError("Invalid date_after parameter")
		}
		filter.DateAfter = &date
	}
	if raw := c.QueryParam("date_before"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return filter, 0, models.NewValidationError("Invalid date_before parameter")
		}
		filter.DateBefore = &date
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return filter, 0, models.NewValidationError("Invalid page parameter")
		}
		page = parsed
	}

	return filter, page, nil
}

// pageLink renders the request URL with the page parameter swapped, or nil
// at a boundary.
func pageLink(c echo.Context, page int, ok bool) *string {
	if !ok {
		return nil
	}

	link := *c.Request().URL
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	link.RawQuery = query.Encode()

	s := link.String()
	return &s
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
