package gateway

import (
	"github.com/autofinanceai/backend/internal/pkg/models"
)

// AIGateway talks to the Gemini text-generation service. Each call is
// independent and stateless: no caching, no retries, no timeout beyond the
// HTTP client's default.
type AIGateway struct {
	cfg models.AIConfig
}

// NewAIGateway creates a new AI gateway
func NewAIGateway(cfg models.AIConfig) *AIGateway {
	return &AIGateway{cfg: cfg}
}
