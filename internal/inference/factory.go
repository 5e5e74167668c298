package inference

import (
	"fmt"
	"strings"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// NewProvider creates an inference provider from configuration. An
// empty provider name selects the built-in static provider.
func NewProvider(config model.InferenceConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "", "static":
		return NewStaticProvider(), nil

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown inference provider: %s (supported: static, openai, ollama)", config.Provider)
	}
}
