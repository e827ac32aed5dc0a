package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

func multipartImageRequest(t *testing.T, fieldName string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, "receipt.jpg")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/image-to-transaction/", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestExtractFromImage(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	e := echo.New()
	req := multipartImageRequest(t, "image", []byte("fake image bytes"))
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	mockUC.EXPECT().
		ExtractFromImage(gomock.Any(), []byte("fake image bytes"), gomock.Any()).
		Return([]models.ExtractedTransaction{
			{Description: "Coffee", Amount: decimal.RequireFromString("4.50"), Category: "food"},
			{Description: "Bus ticket", Amount: decimal.RequireFromString("2.75"), Category: "transport"},
		}, nil)

	err := handler.ExtractFromImage(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Extracted 2 transactions from image", response["message"])
	assert.Len(t, response["transactions"], 2)
}

func TestExtractFromImageMissingFile(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := multipartImageRequest(t, "wrong_field", []byte("bytes"))
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	err := handler.ExtractFromImage(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No image file provided.")
}

func TestExtractFromImageOversized(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := multipartImageRequest(t, "image", make([]byte, maxImageSize+1))
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	err := handler.ExtractFromImage(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image file size exceeds 5MB limit.")
}

func TestExtractFromImageEmptyResult(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	e := echo.New()
	req := multipartImageRequest(t, "image", []byte("blank receipt"))
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	mockUC.EXPECT().
		ExtractFromImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ExtractedTransaction{}, nil)

	err := handler.ExtractFromImage(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractFromImageUnparseableReply(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	e := echo.New()
	req := multipartImageRequest(t, "image", []byte("bytes"))
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	mockUC.EXPECT().
		ExtractFromImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.NewValidationError("Failed to extract transactions from image."))

	err := handler.ExtractFromImage(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
