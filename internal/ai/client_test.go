package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartcity/internal/models"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-3.5-turbo",
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":    "chatcmpl-123",
		"model": "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Complete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var captured Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(completionBody("  Place sensors on Broadway.  "))
		}))
		defer server.Close()

		out, err := testClient(server.URL).Complete(context.Background(), "system directive", "user prompt", 300)
		require.NoError(t, err)
		assert.Equal(t, "Place sensors on Broadway.", out)

		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "system directive", captured.Messages[0].Content)
		assert.Equal(t, "user", captured.Messages[1].Role)
		assert.Equal(t, 300, captured.MaxTokens)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := testClient(server.URL).Complete(context.Background(), "s", "u", 100)
		requireGenerationFailure(t, err)
	})

	t.Run("api-level error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "invalid api key", "type": "auth"},
			})
		}))
		defer server.Close()

		_, err := testClient(server.URL).Complete(context.Background(), "s", "u", 100)
		requireGenerationFailure(t, err)
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		_, err := testClient(server.URL).Complete(context.Background(), "s", "u", 100)
		requireGenerationFailure(t, err)
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing listening anymore

		_, err := testClient(server.URL).Complete(context.Background(), "s", "u", 100)
		requireGenerationFailure(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://localhost:0"}, zap.NewNop())
		_, err := client.Complete(context.Background(), "s", "u", 100)
		requireGenerationFailure(t, err)
	})
}

// requireGenerationFailure checks the uniform failure contract: a typed
// APIError with a non-empty user-facing message, never a panic.
func requireGenerationFailure(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(models.APIError)
	require.True(t, ok, "expected APIError, got %T", err)
	assert.Equal(t, models.ErrorCodeGenerationFailed, apiErr.Code)
	assert.NotEmpty(t, apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
