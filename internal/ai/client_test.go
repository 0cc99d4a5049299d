package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"journal-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "gpt-3.5-turbo",
		Timeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)
	return client
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error": {"message": "` + message + `", "type": "test_error"}}`))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{}, nil)

	assert.Error(t, err)
}

func TestComplete_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"hook\": \"h\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 30, "total_tokens": 150}
		}`))
	})

	result, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, `{"hook": "h"}`, result.Content)
	require.NotNil(t, result.Usage)
	assert.Equal(t, 150, result.Usage.TotalTokens)
	assert.Equal(t, 120, result.Usage.PromptTokens)
}

func TestComplete_UnauthorizedMapsToNotConfigured(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid api key")
	})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.ErrorIs(t, err, model.ErrAINotConfigured)
}

func TestComplete_RateLimitMapsToRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusTooManyRequests, "rate limit")
	})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.ErrorIs(t, err, model.ErrAIRateLimited)
}

func TestComplete_ServerErrorMapsToUpstream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "upstream exploded")
	})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.ErrorIs(t, err, model.ErrAIUpstream)
}

func TestComplete_EmptyChoicesMapsToUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-3.5-turbo", "choices": []}`))
	})

	_, err := client.Complete(context.Background(), "system", "user")

	assert.ErrorIs(t, err, model.ErrAIUnavailable)
}

func TestComplete_TransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "gpt-3.5-turbo",
		Timeout: time.Second,
	}, nil)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "system", "user")

	assert.ErrorIs(t, err, model.ErrAIUnavailable)
}

func TestComplete_OmittedUsageLeavesUsageNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}]
		}`))
	})

	result, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Nil(t, result.Usage)
}
