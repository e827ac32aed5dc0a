package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// AnalyzePeriod produces the AI spending analysis for one calendar month
// compared against the preceding month. Every failure path yields a
// well-formed result; this operation never returns an error to the caller.
func (uc *TransactionUC) AnalyzePeriod(ctx context.Context, actor models.Actor, year int, month int) *models.InsightResult {
	current, err := uc.repo.ListPeriod(ctx, actor.UserID, year, month)
	if err != nil {
		logger.Error("Failed to load current period for analysis",
			logger.Err(err),
			logger.Int("year", year),
			logger.Int("month", month),
		)
		return analysisFailure(err)
	}

	prevYear, prevMonth := previousPeriod(year, month)
	previous, err := uc.repo.ListPeriod(ctx, actor.UserID, prevYear, prevMonth)
	if err != nil {
		logger.Error("Failed to load previous period for analysis",
			logger.Err(err),
			logger.Int("year", prevYear),
			logger.Int("month", prevMonth),
		)
		return analysisFailure(err)
	}

	raw, err := uc.aiGW.GenerateInsight(ctx, current, previous)
	if err != nil {
		logger.Warn("Insight generation failed", logger.Err(err))
		return analysisFailure(err)
	}

	cleaned := utils.StripCodeFence(raw)

	var report models.InsightReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		logger.Warn("Insight reply was not valid JSON", logger.Err(err))
		return &models.InsightResult{
			Status:  models.InsightStatusDegraded,
			RawText: cleaned,
		}
	}

	return &models.InsightResult{
		Status: models.InsightStatusOK,
		Report: &report,
	}
}

func analysisFailure(err error) *models.InsightResult {
	return &models.InsightResult{
		Status: models.InsightStatusError,
		Reason: fmt.Sprintf("Analysis failed: %v", err),
	}
}

// previousPeriod returns the calendar month preceding the given one.
func previousPeriod(year, month int) (int, int) {
	if month > 1 {
		return year, month - 1
	}
	return year - 1, 12
}
