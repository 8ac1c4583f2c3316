package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/soapsrc/ImposterGame/internal/domain"
	"github.com/soapsrc/ImposterGame/internal/ports"
)

const (
	DefaultBaseURL     = "https://api.cohere.ai/v1"
	DefaultModel       = "command"
	DefaultTemperature = 0.3
)

// Client implements ports.HintGenerator via the Cohere chat API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	logger      *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		httpClient:  httpClient,
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: DefaultTemperature,
		logger:      logger,
	}
}

// chatRequest mirrors the v1 /chat request body.
type chatRequest struct {
	Message     string  `json:"message"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

func (c *Client) GenerateHint(ctx context.Context, in ports.HintInput) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	body, err := json.Marshal(chatRequest{
		Message:     in.Prompt,
		Model:       c.model,
		Temperature: c.temperature,
	})
	if err != nil {
		return nil, &domain.UnexpectedError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &domain.UnexpectedError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UnexpectedError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UnexpectedError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "cohere request failed",
			"status", resp.StatusCode,
			"model", c.model,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	respBody = bytes.TrimSpace(respBody)
	if !json.Valid(respBody) {
		return nil, &domain.UnexpectedError{Err: errors.New("invalid JSON in upstream response")}
	}

	c.logger.DebugContext(ctx, "cohere request ok",
		"model", c.model,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return json.RawMessage(respBody), nil
}
