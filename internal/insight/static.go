package insight

import (
	"context"

	"github.com/terraincognita07/habitual/internal/models"
)

const (
	StaticInsightText = "Insight API key not configured. Placeholder insight: you are doing great, but remember to rest when you feel tired. Consistency is key."
	StaticQuoteText   = "A journey of a thousand miles begins with a single step."
)

// StaticGenerator serves fixed texts when no generator API is configured.
type StaticGenerator struct{}

func (StaticGenerator) GenerateInsight(context.Context, []models.CheckIn) (string, error) {
	return StaticInsightText, nil
}

func (StaticGenerator) GenerateDailyQuote(context.Context) (string, error) {
	return StaticQuoteText, nil
}
