package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction for chat-completion interaction.
// Consumers call Generate with a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt to the model and returns the completion.
	// A single attempt is made per invocation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// User is the user prompt. Generation here is always single-turn.
	User string

	// Schema constrains the model output to the given shape via the
	// provider's structured-output mechanism. Validating the returned
	// content against it is left to the caller.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness.
	Temperature float32
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, e.g. "lesson" or "schedule".
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in
	// the request, this is the JSON object emitted by the model.
	Content json.RawMessage

	// Model is the actual model that served the request.
	Model string
}
