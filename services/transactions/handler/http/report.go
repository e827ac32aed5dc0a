package http

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// DownloadMonthlyReport handles the monthly PDF transcript download.
func (h *TransactionHandler) DownloadMonthlyReport(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	document, err := h.txUC.MonthlyReportPDF(c.Request().Context(), actor, year, int(month))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("No transactions found for %04d-%02d", year, month))
		}
		logger.Error("Failed to render monthly transcript", logger.Err(err))
		return writeError(c, err)
	}

	filename := fmt.Sprintf("transactions_%04d_%02d.pdf", year, month)
	return utils.AttachmentResponse(c, "application/pdf", filename, document)
}
