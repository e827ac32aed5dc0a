package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

func TestDownloadMonthlyReport(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions/pdf/download/?year=2026&month=1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, userID, false)

	mockUC.EXPECT().
		MonthlyReportPDF(gomock.Any(), models.Actor{UserID: userID}, 2026, 1).
		Return([]byte("%PDF-1.7 fake"), nil)

	err := handler.DownloadMonthlyReport(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="transactions_2026_01.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.7 fake", rec.Body.String())
}

func TestDownloadMonthlyReportEmptyMonth(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions/pdf/download/?year=2026&month=2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	mockUC.EXPECT().
		MonthlyReportPDF(gomock.Any(), gomock.Any(), 2026, 2).
		Return(nil, models.ErrNotFound)

	err := handler.DownloadMonthlyReport(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No transactions found for 2026-02")
}
