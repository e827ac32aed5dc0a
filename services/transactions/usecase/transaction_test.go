package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/services/transactions/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Categories: models.CategoryConfig{
			Allowed: []string{"income", "food", "transport", "miscellaneous"},
			Income:  "income",
			Default: "miscellaneous",
		},
	}
}

func setupTransactionUCTest(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo, *mocks.MockAIGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockAIGW(ctrl)
	uc := NewTransactionUC(testConfig(), mockRepo, mockGW)
	return uc, mockRepo, mockGW
}

func TestListTransactionsPagination(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	totals := &models.TransactionTotals{TotalTransactions: 41}

	mockRepo.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(totals, nil)
	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any(), PageSize, 2*PageSize).
		Return([]models.TransactionView{}, nil)

	page, err := uc.ListTransactions(context.Background(), actor, models.TransactionFilter{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 41, page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, PageSize, page.PageSize)
	assert.Empty(t, page.Results)
}

func TestListTransactionsNarrowsOwnerForNonStaff(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}

	mockRepo.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.TransactionFilter) (*models.TransactionTotals, error) {
			require.NotNil(t, filter.OwnerID)
			assert.Equal(t, actor.UserID, *filter.OwnerID)
			return &models.TransactionTotals{}, nil
		})
	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any(), PageSize, 0).
		Return([]models.TransactionView{}, nil)

	_, err := uc.ListTransactions(context.Background(), actor, models.TransactionFilter{}, 1)
	require.NoError(t, err)
}

func TestListTransactionsStaffSeesAllOwners(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New(), IsStaff: true}

	mockRepo.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.TransactionFilter) (*models.TransactionTotals, error) {
			assert.Nil(t, filter.OwnerID)
			return &models.TransactionTotals{}, nil
		})
	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any(), PageSize, 0).
		Return([]models.TransactionView{}, nil)

	_, err := uc.ListTransactions(context.Background(), actor, models.TransactionFilter{}, 1)
	require.NoError(t, err)
}

func TestCreateTransaction(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	date := models.Today()

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	created, err := uc.CreateTransaction(context.Background(), actor, models.CreateTransactionRequest{
		Date:        &date,
		Description: "Groceries",
		Amount:      decimal.RequireFromString("85.50"),
		Category:    "food",
	})
	require.NoError(t, err)
	assert.Equal(t, actor.UserID, created.UserID)
	assert.Equal(t, "food", created.Category)
}

func TestCreateTransactionValidation(t *testing.T) {
	date := models.Today()

	testCases := []struct {
		name    string
		req     models.CreateTransactionRequest
		wantMsg string
	}{
		{
			name:    "Missing Date",
			req:     models.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Category: "food"},
			wantMsg: "Date is required.",
		},
		{
			name:    "Zero Amount",
			req:     models.CreateTransactionRequest{Date: &date, Amount: decimal.Zero, Category: "food"},
			wantMsg: "Amount must be greater than zero.",
		},
		{
			name:    "Negative Amount",
			req:     models.CreateTransactionRequest{Date: &date, Amount: decimal.NewFromInt(-5), Category: "food"},
			wantMsg: "Amount must be greater than zero.",
		},
		{
			name:    "Unknown Category",
			req:     models.CreateTransactionRequest{Date: &date, Amount: decimal.NewFromInt(10), Category: "gambling"},
			wantMsg: `Invalid category "gambling".`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := setupTransactionUCTest(t)

			created, err := uc.CreateTransaction(context.Background(), models.Actor{UserID: uuid.New()}, tc.req)
			assert.Nil(t, created)
			require.True(t, models.IsValidation(err))
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestCreateTransactionBatch(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	date := models.Today()

	mockRepo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Len(2)).
		Return(nil)

	created, err := uc.CreateTransactionBatch(context.Background(), actor, []models.CreateTransactionRequest{
		{Date: &date, Description: "Salary", Amount: decimal.NewFromInt(3200), Category: "income"},
		{Date: &date, Description: "Groceries", Amount: decimal.RequireFromString("85.50"), Category: "food"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, actor.UserID, created[0].UserID)
	assert.Equal(t, actor.UserID, created[1].UserID)
}

func TestCreateTransactionBatchRejectsBeforeWriting(t *testing.T) {
	// No CreateBatch expectation: one invalid record must stop the batch
	// before any repository write.
	uc, _, _ := setupTransactionUCTest(t)

	date := models.Today()

	created, err := uc.CreateTransactionBatch(context.Background(), models.Actor{UserID: uuid.New()}, []models.CreateTransactionRequest{
		{Date: &date, Description: "Salary", Amount: decimal.NewFromInt(3200), Category: "income"},
		{Date: &date, Description: "Bad", Amount: decimal.Zero, Category: "food"},
	})
	assert.Nil(t, created)
	require.True(t, models.IsValidation(err))
	assert.Contains(t, err.Error(), "Transaction 2:")
}

func TestCreateTransactionBatchEmpty(t *testing.T) {
	uc, _, _ := setupTransactionUCTest(t)

	created, err := uc.CreateTransactionBatch(context.Background(), models.Actor{UserID: uuid.New()}, nil)
	assert.Nil(t, created)
	assert.True(t, models.IsValidation(err))
}

func TestUpdateTransaction(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	existing := &models.Transaction{
		ID:          uuid.New(),
		UserID:      actor.UserID,
		Date:        models.Today(),
		Description: "Groceries",
		Amount:      decimal.RequireFromString("85.50"),
		Category:    "food",
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	newAmount := decimal.NewFromInt(90)
	updated, err := uc.UpdateTransaction(context.Background(), actor, existing.ID, models.UpdateTransactionRequest{
		Amount: &newAmount,
	})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(newAmount))
	assert.Equal(t, "Groceries", updated.Description)
}

func TestUpdateTransactionHidesForeignRows(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	foreign := &models.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	desc := "spying"
	updated, err := uc.UpdateTransaction(context.Background(), models.Actor{UserID: uuid.New()}, foreign.ID, models.UpdateTransactionRequest{
		Description: &desc,
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateTransactionStaffCanTouchForeignRows(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	foreign := &models.Transaction{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Date:     models.Today(),
		Amount:   decimal.NewFromInt(10),
		Category: "food",
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	desc := "Corrected description"
	updated, err := uc.UpdateTransaction(context.Background(), models.Actor{UserID: uuid.New(), IsStaff: true}, foreign.ID, models.UpdateTransactionRequest{
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
}

func TestDeleteTransaction(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	actor := models.Actor{UserID: uuid.New()}
	existing := &models.Transaction{ID: uuid.New(), UserID: actor.UserID}

	mockRepo.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

	err := uc.DeleteTransaction(context.Background(), actor, existing.ID)
	assert.NoError(t, err)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	id := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound)

	err := uc.DeleteTransaction(context.Background(), models.Actor{UserID: uuid.New()}, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListTransactionsTotalsError(t *testing.T) {
	uc, mockRepo, _ := setupTransactionUCTest(t)

	mockRepo.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	page, err := uc.ListTransactions(context.Background(), models.Actor{UserID: uuid.New()}, models.TransactionFilter{}, 1)
	assert.Nil(t, page)
	assert.Error(t, err)
}
