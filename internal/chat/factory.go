package chat

import (
	"context"
	"fmt"

	"github.com/Akshansingh/EDTECHPCM/internal/config"
)

// ProviderNone disables the chat proxy.
const ProviderNone = "none"

// NewProvider creates a Provider from configuration. It returns a nil
// Provider and no error when chat is disabled.
func NewProvider(ctx context.Context, cfg config.Chat) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case ProviderNone, "":
		return nil, nil
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown chat provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}
