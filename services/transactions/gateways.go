package transactions

import (
	"context"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/autofinanceai/backend/services/transactions AIGW

// AIGW represents the external text-generation service. Both methods return
// the raw model reply; parsing and degradation policy live in the usecase.
type AIGW interface {
	// GenerateInsight asks for a structured spending analysis of the current
	// period's records, optionally compared against the previous period's.
	GenerateInsight(ctx context.Context, current, previous []models.TransactionRecord) (string, error)

	// ExtractReceipt asks for a JSON transaction list parsed from the given
	// receipt image, constrained to the category enumeration.
	ExtractReceipt(ctx context.Context, image []byte, mimeType string, categories []string) (string, error)
}
