package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		client, err := NewClient(Config{Model: "openai/gpt-4.1-mini"})
		assert.Nil(t, client)

		var ce *models.ConfigurationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "OPENROUTER_API_KEY", ce.Name)
	})

	t.Run("reports the configured model", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "sk-test", Model: "openai/gpt-4.1-mini"})
		require.NoError(t, err)
		assert.Equal(t, "openai/gpt-4.1-mini", client.ModelID())
	})
}

func completionBody(content string) string {
	return `{
		"id": "gen-1",
		"object": "chat.completion",
		"model": "openai/gpt-4.1-mini",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": ` + mustJSONString(content) + `}, "finish_reason": "stop"}
		]
	}`
}

func mustJSONString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestClient_Generate(t *testing.T) {
	t.Run("returns the structured content", func(t *testing.T) {
		var gotBody map[string]any
		var gotReferer, gotTitle string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			gotReferer = r.Header.Get("HTTP-Referer")
			gotTitle = r.Header.Get("X-Title")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(completionBody(`{"answer": 42}`)))
		}))
		defer server.Close()

		client, err := NewClient(Config{
			APIKey:  "sk-test",
			BaseURL: server.URL,
			Model:   "openai/gpt-4.1-mini",
			Referer: "https://example.com",
			Title:   "Daily English",
		})
		require.NoError(t, err)

		resp, err := client.Generate(context.Background(), Request{
			System:      "You are a teacher.",
			User:        "Make a lesson.",
			Schema:      &Schema{Name: "lesson", Definition: map[string]any{"type": "object"}},
			MaxTokens:   1000,
			Temperature: 1.2,
		})
		require.NoError(t, err)

		assert.JSONEq(t, `{"answer": 42}`, string(resp.Content))
		assert.Equal(t, "openai/gpt-4.1-mini", resp.Model)

		// Attribution headers ride on the request.
		assert.Equal(t, "https://example.com", gotReferer)
		assert.Equal(t, "Daily English", gotTitle)

		// The schema is sent as a strict json_schema response format.
		rf, ok := gotBody["response_format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "json_schema", rf["type"])
		js, ok := rf["json_schema"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "lesson", js["name"])
		assert.Equal(t, true, js["strict"])

		messages, ok := gotBody["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	})

	t.Run("maps API errors to upstream errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`))
		}))
		defer server.Close()

		client, err := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL, Model: "m"})
		require.NoError(t, err)

		resp, err := client.Generate(context.Background(), Request{User: "hi"})
		assert.Nil(t, resp)

		var ue *models.UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "OpenRouter", ue.Service)
		assert.Equal(t, http.StatusTooManyRequests, ue.Status)
		assert.Contains(t, ue.Body, "Rate limit exceeded")
	})

	t.Run("treats an empty choice list as an empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "gen-1", "object": "chat.completion", "model": "m", "choices": []}`))
		}))
		defer server.Close()

		client, err := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL, Model: "m"})
		require.NoError(t, err)

		resp, err := client.Generate(context.Background(), Request{User: "hi"})
		assert.Nil(t, resp)

		var ee *models.EmptyResponseError
		assert.ErrorAs(t, err, &ee)
	})

	t.Run("treats blank content as an empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(completionBody("")))
		}))
		defer server.Close()

		client, err := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL, Model: "m"})
		require.NoError(t, err)

		resp, err := client.Generate(context.Background(), Request{User: "hi"})
		assert.Nil(t, resp)

		var ee *models.EmptyResponseError
		assert.ErrorAs(t, err, &ee)
	})
}
