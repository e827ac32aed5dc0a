package http

import (
	"encoding/json"
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

func TestAnalyzeSpending(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/analysis/?year=2026&month=3", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, userID, false)

	mockUC.EXPECT().
		AnalyzePeriod(gomock.Any(), models.Actor{UserID: userID}, 2026, 3).
		Return(&models.InsightResult{
			Status: models.InsightStatusOK,
			Report: &models.InsightReport{Overview: "Steady month."},
		})

	err := handler.AnalyzeSpending(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Steady month.", response["overview"])
}

func TestAnalyzeSpendingDegradedStillOK(t *testing.T) {
	handler, mockUC := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/analysis/?year=2026&month=3", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), false)

	mockUC.EXPECT().
		AnalyzePeriod(gomock.Any(), gomock.Any(), 2026, 3).
		Return(&models.InsightResult{
			Status:  models.InsightStatusDegraded,
			RawText: "Spend less on snacks.",
		})

	err := handler.AnalyzeSpending(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Spend less on snacks.", response["analysis"])
	assert.Equal(t, "could not parse as JSON", response["error"])
}

func TestAnalyzeSpendingInvalidPeriod(t *testing.T) {
	testCases := []string{
		"?month=13",
		"?month=0",
		"?year=abc",
		"?month=feb",
	}

	for _, query := range testCases {
		t.Run(query, func(t *testing.T) {
			handler, _ := setupHandlerTest(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/analysis/"+query, nil)
			rec := httptest.NewRecorder()
			c := authedContext(e, req, rec, uuid.New(), false)

			err := handler.AnalyzeSpending(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
