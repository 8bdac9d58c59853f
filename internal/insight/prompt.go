package insight

import (
	"encoding/json"
	"fmt"

	"github.com/terraincognita07/habitual/internal/models"
)

const DailyQuotePrompt = `Write a quote of the day for someone who is building a new habit.
Make it simple but deep: it should create connection, motivate, and bring a small original insight.

Instructions:
1. Tone: warm, inspiring and wise. Avoid slang and heavy humor. Use clear, accessible language.
2. Content: connect the journey of building a habit to a real concept from neuroscience or behavioral psychology, explained very simply.
3. Emotional goal: the reader should feel understood and capable. Reinforce that difficulty is normal and part of how the brain changes.
4. Format: short and direct, two or three sentences at most.
5. Originality: avoid common motivational cliches. Draw on ideas such as cognitive load, the plateau of latent potential or the compounding effect.`

type checkInSummary struct {
	Date        string               `json:"date"`
	Status      models.CheckInStatus `json:"status"`
	Challenges  []string             `json:"challenges,omitempty"`
	Motivations []string             `json:"motivations,omitempty"`
	Mood        *int                 `json:"mood,omitempty"`
}

// BuildInsightPrompt renders the recent check-ins into an instruction for a 2-3 sentence
// encouraging insight.
func BuildInsightPrompt(recent []models.CheckIn) (string, error) {
	summaries := make([]checkInSummary, 0, len(recent))
	for _, checkIn := range recent {
		summaries = append(summaries, checkInSummary{
			Date:        checkIn.Date,
			Status:      checkIn.Status,
			Challenges:  checkIn.Challenges,
			Motivations: checkIn.Motivations,
			Mood:        checkIn.Mood,
		})
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("encode check-in summary: %w", err)
	}

	return fmt.Sprintf(`Analyze the following recent check-in data for a user's habit.
Respond in a friendly, empathetic and encouraging tone.
Data: %s

Instructions:
1. Identify the most significant behavioral pattern (positive or negative).
2. Be empathetic and encouraging.
3. Offer a practical, actionable suggestion based on the pattern.
4. Keep the response concise, between 2-3 sentences.
5. Be conversational and human.`, data), nil
}
