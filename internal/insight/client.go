package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/models"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL       = "https://api.openai.com/v1"
	DefaultModel         = "gpt-4o-mini"
	DefaultTimeout       = 30 * time.Second
	DefaultRatePerMinute = 20

	maxResponseBytes = 1 << 20
)

var (
	ErrEmptyCompletion = errors.New("generator returned no text")
	ErrUpstreamStatus  = errors.New("generator returned an error status")
)

// Generator produces narrative text from recent check-ins.
type Generator interface {
	GenerateInsight(ctx context.Context, recent []models.CheckIn) (string, error)
	GenerateDailyQuote(ctx context.Context) (string, error)
}

type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	Timeout       time.Duration
	RatePerMinute int
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGenerator returns a Client when an API key is configured and a StaticGenerator
// otherwise.
func NewGenerator(config Config) Generator {
	if strings.TrimSpace(config.APIKey) == "" {
		logger.Info("insight API key not configured, using static texts")
		return StaticGenerator{}
	}
	return NewClient(config)
}

func NewClient(config Config) *Client {
	if strings.TrimSpace(config.BaseURL) == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if strings.TrimSpace(config.Model) == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RatePerMinute <= 0 {
		config.RatePerMinute = DefaultRatePerMinute
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RatePerMinute)), 1),
	}
}

func (client *Client) GenerateInsight(ctx context.Context, recent []models.CheckIn) (string, error) {
	prompt, err := BuildInsightPrompt(recent)
	if err != nil {
		return "", err
	}
	return client.complete(ctx, prompt)
}

func (client *Client) GenerateDailyQuote(ctx context.Context) (string, error) {
	return client.complete(ctx, DailyQuotePrompt)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (client *Client) complete(ctx context.Context, prompt string) (string, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for generator quota: %w", err)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:    client.config.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, client.config.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+client.config.APIKey)

	started := time.Now()
	resp, err := client.httpClient.Do(httpReq)
	metrics.InsightRequestDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("generator API error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
