package predictor

import (
	"context"
	"fmt"

	"github.com/abhisek/stresswatch/internal/store"
)

// New creates a Predictor from configuration, wrapped with retry and,
// when an event repo is supplied, prediction event logging.
//
// Middleware order: caller → retry → logging → classifier → backend, so
// every individual attempt is logged.
func New(ctx context.Context, cfg Config, events store.EventRepo) (Predictor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Predictor
	switch cfg.Provider {
	case "anthropic":
		gen, err := newAnthropicGenerator(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic provider: %w", err)
		}
		base = newClassifier(gen, defaultClassifierConfig())
	case "openai":
		gen, err := newOpenAIGenerator(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		base = newClassifier(gen, defaultClassifierConfig())
	case "gemini":
		gen, err := newGeminiGenerator(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		base = newClassifier(gen, defaultClassifierConfig())
	case "mock":
		base = NewMockPredictor()
	default:
		return nil, fmt.Errorf("unknown predictor provider: %q", cfg.Provider)
	}

	if events != nil {
		base = WithEventLog(base, events)
	}
	return WithRetry(base, cfg.Retry), nil
}
