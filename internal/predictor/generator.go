package predictor

import (
	"context"
	"encoding/json"
)

// generator is the transport boundary to a structured-output LLM backend.
// Implementations send one system+user exchange and return JSON conforming
// to the requested schema. The classifier on top turns that JSON into a
// Prediction.
type generator interface {
	generate(ctx context.Context, req genRequest) (*genResponse, error)
	modelID() string
}

// genRequest describes one structured-output request.
type genRequest struct {
	// System sets the model's role and constraints.
	System string

	// User is the single user message carrying the student features.
	User string

	// Schema is the JSON schema the response must conform to.
	Schema *responseSchema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness; 0 (the default) is deterministic.
	Temperature float64
}

// genResponse holds the backend's output.
type genResponse struct {
	// Content is the schema-validated JSON object.
	Content json.RawMessage

	// Model is the actual model that served the request.
	Model string

	InputTokens  int
	OutputTokens int
}

// responseSchema defines the JSON structure expected from the backend.
type responseSchema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// resolveModel maps a friendly model name to a provider model ID. Names
// not in the map pass through unchanged, allowing direct model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
