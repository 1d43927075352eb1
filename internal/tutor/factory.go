package tutor

import (
	"context"
	"fmt"
	"log/slog"

	"anglolingua/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// event logging.
func NewProvider(ctx context.Context, cfg Config, events store.TutorEventRepo, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	case "none":
		base = NewUnavailableProvider()
	default:
		return nil, fmt.Errorf("unknown tutor provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, events, logger), nil
}
