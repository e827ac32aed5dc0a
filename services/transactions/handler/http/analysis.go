package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/utils"
)

// AnalyzeSpending handles the AI spending analysis endpoint. Analysis failures
// are reported inside the payload rather than as transport errors.
func (h *TransactionHandler) AnalyzeSpending(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result := h.txUC.AnalyzePeriod(c.Request().Context(), actor, year, int(month))
	return c.JSON(http.StatusOK, result.Payload())
}

// parsePeriodQuery reads the optional month and year parameters, defaulting
// to the current month.
func parsePeriodQuery(c echo.Context) (int, time.Month, error) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, errInvalidPeriod
		}
		year = parsed
	}
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errInvalidPeriod
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}
