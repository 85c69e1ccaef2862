package factory

import (
	"genfy-be/pkg/llm"
	"genfy-be/pkg/llm/anthropic"
	"genfy-be/pkg/llm/mistral"
	"genfy-be/pkg/llm/ollama"
)

// ProviderConfig carries the credentials and endpoints each backend needs.
type ProviderConfig struct {
	MistralAPIKey   string
	AnthropicAPIKey string
	OllamaBaseURL   string
	OllamaModel     string
}

func NewLLMProvider(providerType string, cfg ProviderConfig) (llm.LLMProvider, error) {
	switch providerType {
	case "mistral":
		return mistral.NewMistralProvider(cfg.MistralAPIKey, "")
	case "anthropic":
		return anthropic.NewAnthropicProvider(cfg.AnthropicAPIKey, "")
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel), nil
	default:
		return nil, &llm.ConfigError{Provider: providerType, Reason: "unsupported LLM provider"}
	}
}
