package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestAnthropicService(baseURL string) *AnthropicService {
	return &AnthropicService{
		apiKey:  "test-key",
		model:   "test-model",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestAnthropicCompleteSuccess(t *testing.T) {
	var gotAuth, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"1. hello\n2. world"}],"stop_reason":"end_turn"}`))
	}))
	defer srv.Close()

	service := newTestAnthropicService(srv.URL)

	text, err := service.Complete(context.Background(), "system", "prompt", 2000, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "1. hello\n2. world", text)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, anthropicVersion, gotVersion)
}

func TestAnthropicCompleteAuthErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	service := newTestAnthropicService(srv.URL)

	_, err := service.Complete(context.Background(), "", "prompt", 100, 0)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "authentication_error")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAnthropicCompleteRetriesOnRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
			return
		}
		w.Write([]byte(`{"content":[{"type":"text","text":"recovered"}]}`))
	}))
	defer srv.Close()

	service := newTestAnthropicService(srv.URL)

	text, err := service.Complete(context.Background(), "", "prompt", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestAnthropicCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[],"stop_reason":"end_turn"}`))
	}))
	defer srv.Close()

	service := newTestAnthropicService(srv.URL)

	_, err := service.Complete(context.Background(), "", "prompt", 100, 0)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestNewAnthropicServiceRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewAnthropicService()
	assert.Error(t, err)
}

func TestNewAnthropicServiceDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_MODEL", "")

	service, err := NewAnthropicService()
	require.NoError(t, err)
	assert.Equal(t, defaultAnthropicModel, service.Model())
}
