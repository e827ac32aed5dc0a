package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/utils"
)

// maxImageSize caps uploaded receipt images at 5MB.
const maxImageSize = 5 << 20

// ExtractFromImage handles receipt image uploads and returns the extracted
// transaction candidates without persisting them.
func (h *TransactionHandler) ExtractFromImage(c echo.Context) error {
	if _, err := actorFromContext(c); err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "No image file provided.")
	}
	if fileHeader.Size > maxImageSize {
		return utils.BadRequestResponse(c, "Image file size exceeds 5MB limit.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Could not read image file.")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return utils.BadRequestResponse(c, "Could not read image file.")
	}
	if len(image) > maxImageSize {
		return utils.BadRequestResponse(c, "Image file size exceeds 5MB limit.")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	extracted, err := h.txUC.ExtractFromImage(c.Request().Context(), image, mimeType)
	if err != nil {
		logger.Error("Failed to extract transactions from image", logger.Err(err))
		return writeError(c, err)
	}
	if len(extracted) == 0 {
		return utils.BadRequestResponse(c, "No transactions could be extracted from the image.")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      fmt.Sprintf("Extracted %d transactions from image", len(extracted)),
		"transactions": extracted,
	})
}
