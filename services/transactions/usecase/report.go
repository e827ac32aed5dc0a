package usecase

import (
	"context"
	"fmt"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/pkg/pdf"
)

// MonthlyReportPDF renders the actor's transactions for one calendar month
// into a PDF transcript. A month with no transactions is reported as not
// found.
func (uc *TransactionUC) MonthlyReportPDF(ctx context.Context, actor models.Actor, year int, month int) ([]byte, error) {
	records, err := uc.repo.ListPeriod(ctx, actor.UserID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load report period: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no transactions found for %04d-%02d: %w", year, month, models.ErrNotFound)
	}

	document, err := pdf.RenderMonthlyTranscript(records, uc.cfg.Categories.Income)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}
	return document, nil
}
