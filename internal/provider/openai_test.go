package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-greenery-relay/pkg/models"
)

func TestOpenAIProvider_GenerateContent(t *testing.T) {
	var seenAuth string
	var seenBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		seenAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&seenBody); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"status\":\"Adequate\"}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer ts.Close()

	p := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: ts.URL + "/v1/"})
	assert.Equal(t, "openai", p.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	image := &models.ImagePayload{Data: []byte{0x89, 'P', 'N', 'G'}, MimeType: "image/jpeg"}
	text, err := p.GenerateContent(ctx, "assess greenery", image)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"Adequate"}`, text)
	assert.Equal(t, "Bearer sk-test", seenAuth)

	messages := seenBody["messages"].([]any)
	require.Len(t, messages, 1)
	parts := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, parts, 2)

	first := parts[0].(map[string]any)
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "assess greenery", first["text"])

	second := parts[1].(map[string]any)
	assert.Equal(t, "image_url", second["type"])
	wantURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image.Data)
	assert.Equal(t, wantURL, second["image_url"].(map[string]any)["url"])
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error": {"message": "boom", "type": "server_error"}}`},
		{"quota", http.StatusTooManyRequests, `{"error": {"message": "quota", "type": "insufficient_quota"}}`},
		{"no choices", http.StatusOK, `{"id": "x", "object": "chat.completion", "choices": []}`},
		{"blank content", http.StatusOK, `{"id": "x", "choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			p := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: ts.URL + "/v1"})
			_, err := p.GenerateContent(context.Background(), "prompt", &models.ImagePayload{Data: []byte{1}, MimeType: "image/png"})
			assert.Error(t, err)
		})
	}
}
