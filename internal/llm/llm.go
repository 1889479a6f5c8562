package llm

import (
	"fmt"

	"github.com/phuquy-28/onboarding-chatbot/internal/chat"
)

type Provider string

const (
	ProviderAzure  Provider = "azure"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Options carries the provider selection plus everything the adapters need
// to reach the completion service. Model doubles as the Azure deployment
// name.
type Options struct {
	Provider   Provider
	Model      string
	BaseURL    string
	APIKey     string
	APIVersion string
}

func NewAdapter(opts Options) (chat.Adapter, error) {
	switch opts.Provider {
	case ProviderAzure, ProviderOpenAI:
		return NewOpenAIAdapter(opts)
	case ProviderOllama:
		return NewOllamaAdapter(opts.Model, opts.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
}
