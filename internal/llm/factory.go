package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentbank/foundry/internal/config"
)

// NewClient builds an LLMClient for the configured provider. The model
// argument overrides cfg.Model so callers can run different agents against
// different models (the interpreter and the mapper use separate ones).
func NewClient(ctx context.Context, cfg config.LLMConfig, model string) (LLMClient, error) {
	if model == "" {
		model = cfg.Model
	}
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, model)

	case "claude":
		return NewClaudeClient(cfg.APIKey, model, cfg.BaseURL), nil

	case "ollama":
		// Ollama speaks the OpenAI chat API under /v1, so reuse that client.
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		// Ollama ignores the API key but the client config requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}

		return NewOpenAIClient(apiKey, model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
