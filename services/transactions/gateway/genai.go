package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

const insightInstruction = `You are a simple financial advisor. Analyze these transactions and give easy-to-understand advice.

Rules:
- Keep all text short and simple
- Use bullet points with specific dollar amounts
- Give actionable tips like "Save $200 this month"
- Avoid long explanations
- Use everyday language
- Currency is Bangladeshi Taka (BDT)

CURRENT MONTH TRANSACTIONS: %s
%s

Provide a simple, user-friendly analysis in this exact JSON format. Keep all text short and easy to understand:
{
    "overview": "Brief 1-2 sentence summary of spending period and key insight",

    "financial_score": {
        "score": 75,
        "status": "Good/Fair/Poor"
    },

    "quick_tips": [
        "Save BDT500 this month",
        "Reduce food spending by BDT200",
        "Set aside BDT100 for emergencies"
    ],

    "warnings": [
        "High spending on entertainment",
        "No emergency savings"
    ],

    "good_habits": [
        "Staying within grocery budget",
        "Consistent saving pattern"
    ]
}
now if the current transactions analysis is not for the actual current month, make sure to give the analysis in past tense.
`

const extractionInstruction = `Make a transaction list from this receipt.
Output Format:[
    {"date": "YYYY-MM-DD", "description": "Burger King - Burger", "amount": 32, "category": "food"},
    {"date": "YYYY-MM-DD", "description": "Burger King - Frenchfries", "amount": 13, "category": "food"},
    ...]
Categories: [%s]
`

// GenerateInsight sends both periods' records to the model and returns its
// raw text reply.
func (g *AIGateway) GenerateInsight(ctx context.Context, current, previous []models.TransactionRecord) (string, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("failed to encode current period: %w", err)
	}

	comparison := ""
	if len(previous) > 0 {
		previousJSON, err := json.Marshal(previous)
		if err != nil {
			return "", fmt.Errorf("failed to encode previous period: %w", err)
		}
		comparison = fmt.Sprintf("PREVIOUS MONTH TRANSACTIONS FOR COMPARISON: %s", previousJSON)
	}

	prompt := fmt.Sprintf(insightInstruction, currentJSON, comparison)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	return g.generate(ctx, contents)
}

// ExtractReceipt sends the receipt image and the category enumeration to the
// model and returns its raw text reply.
func (g *AIGateway) ExtractReceipt(ctx context.Context, image []byte, mimeType string, categories []string) (string, error) {
	quoted := make([]string, len(categories))
	for i, category := range categories {
		quoted[i] = `"` + category + `"`
	}
	prompt := fmt.Sprintf(extractionInstruction, strings.Join(quoted, ", "))

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
				{Text: prompt},
			},
		},
	}

	return g.generate(ctx, contents)
}

func (g *AIGateway) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
