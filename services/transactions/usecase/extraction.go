package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/autofinanceai/backend/internal/pkg/logger"
	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/internal/utils"
)

// ExtractFromImage turns receipt image bytes into transaction-shaped
// records. Unlike the insight path, an unparseable reply is a genuine error;
// individual records that fail construction are skipped so one bad record
// does not discard the batch. Nothing is persisted.
func (uc *TransactionUC) ExtractFromImage(ctx context.Context, image []byte, mimeType string) ([]models.ExtractedTransaction, error) {
	raw, err := uc.aiGW.ExtractReceipt(ctx, image, mimeType, uc.cfg.Categories.Allowed)
	if err != nil {
		return nil, fmt.Errorf("failed to extract transactions from image: %w", err)
	}

	cleaned := utils.StripCodeFence(raw)

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		logger.Warn("Extraction reply was not valid JSON", logger.Err(err))
		return nil, models.NewValidationError("Failed to extract transactions from image.")
	}

	records := make([]models.ExtractedTransaction, 0, len(items))
	for _, item := range items {
		record, err := uc.buildExtracted(item)
		if err != nil {
			// One malformed record must not abort the rest.
			logger.Warn("Skipping malformed extracted record", logger.Err(err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// buildExtracted constructs one record from a loose model reply entry,
// defaulting every missing field.
func (uc *TransactionUC) buildExtracted(item map[string]interface{}) (models.ExtractedTransaction, error) {
	record := models.ExtractedTransaction{
		Date:        models.Today(),
		Description: "Unknown transaction",
		Amount:      decimal.Zero,
		Category:    uc.cfg.Categories.Default,
	}

	if v, ok := item["description"].(string); ok && v != "" {
		record.Description = v
	}

	if v, ok := item["date"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return models.ExtractedTransaction{}, fmt.Errorf("unexpected date value %v", v)
		}
		date, err := models.ParseDate(s)
		if err != nil {
			return models.ExtractedTransaction{}, err
		}
		record.Date = date
	}

	if v, ok := item["amount"]; ok && v != nil {
		amount, err := parseAmount(v)
		if err != nil {
			return models.ExtractedTransaction{}, err
		}
		record.Amount = amount
	}

	if v, ok := item["category"].(string); ok && v != "" {
		record.Category = v
	}

	return record, nil
}

func parseAmount(v interface{}) (decimal.Decimal, error) {
	switch value := v.(type) {
	case float64:
		return decimal.NewFromFloat(value), nil
	case string:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", value, err)
		}
		return amount, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unexpected amount value %v", v)
	}
}
