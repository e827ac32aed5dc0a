package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

func TestMonthlyReportPDF(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	date, _ := models.ParseDate("2026-01-05")

	records := []models.TransactionRecord{
		{Date: date, Description: "Salary", Amount: decimal.NewFromInt(3200), Category: "income"},
		{Date: date, Description: "Groceries", Amount: decimal.RequireFromString("85.50"), Category: "food"},
	}

	mockRepo.EXPECT().ListPeriod(gomock.Any(), actor.UserID, 2026, 1).Return(records, nil)

	document, err := uc.MonthlyReportPDF(context.Background(), actor, 2026, 1)
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestMonthlyReportPDFEmptyMonth(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}

	mockRepo.EXPECT().ListPeriod(gomock.Any(), actor.UserID, 2026, 2).Return([]models.TransactionRecord{}, nil)

	document, err := uc.MonthlyReportPDF(context.Background(), actor, 2026, 2)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
