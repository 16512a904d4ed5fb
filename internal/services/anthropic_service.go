package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicMessagesPath   = "/v1/messages"
	anthropicVersion        = "2023-06-01"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"

	maxCompletionRetries = 3
	initialRetryWait     = 500 * time.Millisecond
	maxRetryWait         = 10 * time.Second
)

// AnthropicService calls the Anthropic Messages API to produce completions.
// Outbound calls are rate limited and retried on 429/5xx.
type AnthropicService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewAnthropicService creates the completion client from environment config.
// ANTHROPIC_API_KEY is required.
func NewAnthropicService() (*AnthropicService, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not found in environment variables")
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = defaultAnthropicModel
	}

	rpm := 60
	if v := os.Getenv("ANTHROPIC_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			rpm = parsed
		}
	}

	return &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultAnthropicBaseURL,
		client: &http.Client{
			Timeout: 2 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5),
	}, nil
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Model returns the configured model identifier
func (s *AnthropicService) Model() string {
	return s.model
}

// Complete sends a prompt to the Messages API and returns the completion text
func (s *AnthropicService) Complete(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	reqBody := anthropicRequest{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxCompletionRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(float64(initialRetryWait) * math.Pow(2, float64(attempt-1)))
			if wait > maxRetryWait {
				wait = maxRetryWait
			}
			logrus.Debugf("Retrying Anthropic call (attempt %d) after %v: %v", attempt+1, wait, lastErr)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrGenerationFailed, ctx.Err())
			}
		}

		text, retryable, err := s.doRequest(ctx, jsonBody)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}

	return "", lastErr
}

// doRequest performs a single API call. The second return value reports
// whether the failure is worth retrying (429, 5xx, transport errors).
func (s *AnthropicService) doRequest(ctx context.Context, jsonBody []byte) (string, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+anthropicMessagesPath, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", true, fmt.Errorf("%w: request failed: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: failed to read response body: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500

		var apiErr anthropicResponse
		if jsonErr := json.Unmarshal(bodyBytes, &apiErr); jsonErr == nil && apiErr.Error != nil {
			return "", retryable, fmt.Errorf("%w: anthropic api status %d (%s): %s",
				ErrGenerationFailed, resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return "", retryable, fmt.Errorf("%w: anthropic api status %d: %s",
			ErrGenerationFailed, resp.StatusCode, string(bodyBytes))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return "", false, fmt.Errorf("%w: failed to parse response: %v", ErrGenerationFailed, err)
	}

	var sb strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", false, ErrEmptyCompletion
	}

	return text, false, nil
}
