package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Chat(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Scale Email."}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.baseURL = server.URL

	reply, err := client.Chat(context.Background(), "persona", []ChatMessage{
		{Role: "user", Content: "What should we scale?"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Scale Email.", reply)
	assert.Equal(t, "gpt-4o", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "persona", captured.Messages[0].Content)
}

func TestClient_ChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited", "type": "rate_limit"},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", "gpt-4o-mini")
	client.baseURL = server.URL

	_, err := client.Chat(context.Background(), "", []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_ChatRequiresAPIKey(t *testing.T) {
	client := NewClient("", "")
	_, err := client.Chat(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
