package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dailyenglish/backend/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Config holds the settings for the OpenRouter client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// Referer and Title are forwarded as the HTTP-Referer and X-Title
	// headers OpenRouter uses for app attribution.
	Referer string
	Title   string
}

// Client implements Provider against the OpenRouter chat-completion API.
// OpenRouter exposes an OpenAI-compatible API, so the OpenAI SDK is reused
// with a custom base URL.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenRouter client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &models.ConfigurationError{Name: "OPENROUTER_API_KEY"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = baseURL
	config.HTTPClient = &http.Client{
		Transport: &attributionTransport{
			referer: cfg.Referer,
			title:   cfg.Title,
			base:    http.DefaultTransport,
		},
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

// Generate issues a single chat-completion request. A single attempt is
// made per invocation; retrying is left to the caller.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
		{Role: openai.ChatMessageRoleUser, Content: req.User},
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	if req.Schema != nil {
		schemaBytes, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}

		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapAPIError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &models.EmptyResponseError{}
	}

	return &Response{
		Content: json.RawMessage(resp.Choices[0].Message.Content),
		Model:   resp.Model,
	}, nil
}

// ModelID returns the configured model identifier.
func (c *Client) ModelID() string {
	return c.model
}

// mapAPIError converts SDK errors into the shared error taxonomy.
func mapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &models.UpstreamError{
			Service: "OpenRouter",
			Status:  apiErr.HTTPStatusCode,
			Body:    apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &models.UpstreamError{
			Service: "OpenRouter",
			Status:  reqErr.HTTPStatusCode,
			Body:    reqErr.Error(),
		}
	}

	return fmt.Errorf("openrouter request failed: %w", err)
}

// attributionTransport injects the OpenRouter attribution headers into
// every outgoing request.
type attributionTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(req)
}
