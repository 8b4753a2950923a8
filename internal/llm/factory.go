package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	OpenAIBaseURL      string
	OpenAIModel        string
	OpenRouterReferrer string
	OpenRouterTitle    string
	YandexFolderID     string
}

// CreateClient builds a client for the given provider. apiKey is the
// decrypted credential: the API key for OpenAI-compatible endpoints, the
// OAuth token for Yandex.
func (f *Factory) CreateClient(provider, apiKey string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAI(apiKey, f.OpenAIBaseURL, f.OpenAIModel, f.OpenRouterReferrer, f.OpenRouterTitle), nil
	case ProviderYandex:
		return NewYandex(apiKey, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
