// Package ai talks to the external text-generation service. The rest of the
// system treats generation as a black box: a prompt goes in, text or a
// uniform typed failure comes out. Failures never escape as panics and are
// not retried here.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"smartcity/internal/models"
)

// Config holds configuration for the generation client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the OpenAI chat API.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-3.5-turbo",
		Timeout: 60 * time.Second,
	}
}

// Client is the advisory gateway over the chat-completions endpoint.
type Client struct {
	config Config
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a gateway client with custom config.
func NewClient(config Config, logger *zap.Logger) *Client {
	if config.Model == "" {
		config.Model = "gpt-3.5-turbo"
	}
	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.APIKey)
	return &Client{config: config, http: httpClient, logger: logger}
}

// Message is one role-tagged entry of the request conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat-completions request body.
type Request struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// Response is the chat-completions response body.
type Response struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Complete sends a system directive and user prompt to the generation
// service and returns the completion, bounded to maxTokens. Every failure
// mode (transport, auth, rate limit, malformed response) is converted to a
// GenerationFailed APIError carrying a user-facing message.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	start := time.Now()

	if c.config.APIKey == "" {
		return "", models.NewGenerationError(fmt.Errorf("API key not configured"))
	}

	reqBody := Request{
		Model: c.config.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		Post("/chat/completions")
	if err != nil {
		c.logger.Warn("generation request failed",
			zap.String("model", c.config.Model), zap.Error(err))
		return "", models.NewGenerationError(fmt.Errorf("request failed: %w", err))
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("generation request rejected",
			zap.String("model", c.config.Model),
			zap.Int("status", resp.StatusCode()))
		return "", models.NewGenerationError(
			fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.Body()))
	}

	var completion Response
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", models.NewGenerationError(fmt.Errorf("failed to parse response: %w", err))
	}
	if completion.Error != nil {
		return "", models.NewGenerationError(fmt.Errorf("API error: %s", completion.Error.Message))
	}
	if len(completion.Choices) == 0 {
		return "", models.NewGenerationError(fmt.Errorf("no completion returned"))
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	c.logger.Info("generation completed",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", maxTokens),
		zap.Int("response_len", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text, nil
}
