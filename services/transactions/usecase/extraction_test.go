package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

func TestExtractFromImage(t *testing.T) {
	uc, _, mockGW := setupTransactionUCTest(t)

	reply := "```json\n" + `[
		{"date": "2026-02-10", "description": "Coffee", "amount": 4.50, "category": "food"},
		{"date": "2026-02-10", "description": "Bus ticket", "amount": "2.75", "category": "transport"}
	]` + "\n```"

	mockGW.EXPECT().
		ExtractReceipt(gomock.Any(), []byte("img"), "image/png", []string{"income", "food", "transport", "miscellaneous"}).
		Return(reply, nil)

	records, err := uc.ExtractFromImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Coffee", records[0].Description)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("4.5")))
	assert.Equal(t, "transport", records[1].Category)
	assert.True(t, records[1].Amount.Equal(decimal.RequireFromString("2.75")))
}

func TestExtractFromImageDefaultsMissingFields(t *testing.T) {
	uc, _, mockGW := setupTransactionUCTest(t)

	mockGW.EXPECT().
		ExtractReceipt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[{}]`, nil)

	records, err := uc.ExtractFromImage(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Unknown transaction", records[0].Description)
	assert.Equal(t, "miscellaneous", records[0].Category)
	assert.True(t, records[0].Amount.IsZero())
	assert.Equal(t, models.Today().Format(models.DateLayout), records[0].Date.Format(models.DateLayout))
}

func TestExtractFromImageSkipsMalformedRecords(t *testing.T) {
	uc, _, mockGW := setupTransactionUCTest(t)

	reply := `[
		{"date": "2026-02-10", "description": "Coffee", "amount": 4.50, "category": "food"},
		{"date": "not-a-date", "description": "Broken", "amount": 1},
		{"description": "Weird amount", "amount": true}
	]`

	mockGW.EXPECT().
		ExtractReceipt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reply, nil)

	records, err := uc.ExtractFromImage(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee", records[0].Description)
}

func TestExtractFromImageUnparseableReply(t *testing.T) {
	uc, _, mockGW := setupTransactionUCTest(t)

	mockGW.EXPECT().
		ExtractReceipt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("I could not read this receipt.", nil)

	records, err := uc.ExtractFromImage(context.Background(), []byte("img"), "image/jpeg")
	assert.Nil(t, records)
	require.True(t, models.IsValidation(err))
	assert.Equal(t, "Failed to extract transactions from image.", err.Error())
}

func TestExtractFromImageGatewayError(t *testing.T) {
	uc, _, mockGW := setupTransactionUCTest(t)

	mockGW.EXPECT().
		ExtractReceipt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	records, err := uc.ExtractFromImage(context.Background(), []byte("img"), "image/jpeg")
	assert.Nil(t, records)
	assert.Error(t, err)
	assert.False(t, models.IsValidation(err))
}
