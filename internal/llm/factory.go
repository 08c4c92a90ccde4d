package llm

import (
	"fmt"
	"os"
	"strings"

	"canonqa/internal/model"
)

// NewProvider creates a generation provider from configuration. An empty
// provider name disables generation: the pipeline then falls back to the
// deterministic passage-dump response.
func NewProvider(config model.LLMConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ResolveAPIKey fills Config.APIKey from the environment for providers that
// need one. Keys live only in the environment, never in config files.
func ResolveAPIKey(config *model.LLMConfig) error {
	switch strings.ToLower(config.Provider) {
	case "openai":
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		if config.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		config.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if config.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			config.BaseURL = baseURL
		}
	}
	return nil
}
