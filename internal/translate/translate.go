// Package translate provides the domain.Translator backends.
package translate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/msomdec/swasth-ai/internal/config"
	"github.com/msomdec/swasth-ai/internal/domain"
)

// New returns the translator selected by cfg.Provider.
func New(cfg config.Translate) (domain.Translator, error) {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return Identity{}, nil
	case config.ProviderLibreTranslate:
		return NewLibreTranslate(cfg.LibreTranslateURL, cfg.LibreTranslateAPIKey, cfg.Timeout), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai translator: api key is required")
		}
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, http.DefaultClient), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

// Identity returns its input unchanged. It is used when no translation
// backend is configured.
type Identity struct{}

func (Identity) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
