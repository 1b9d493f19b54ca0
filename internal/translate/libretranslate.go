package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// LibreTranslate talks to a LibreTranslate-compatible HTTP API.
type LibreTranslate struct {
	client *resty.Client
	apiKey string
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// NewLibreTranslate creates a client for the server at baseURL. timeout
// bounds each request in addition to any context deadline.
func NewLibreTranslate(baseURL, apiKey string, timeout time.Duration) *LibreTranslate {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &LibreTranslate{client: client, apiKey: apiKey}
}

func (t *LibreTranslate) Translate(ctx context.Context, text, sourceLang, destLang string) (string, error) {
	var out libreResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(libreRequest{
			Q:      text,
			Source: sourceLang,
			Target: destLang,
			Format: "text",
			APIKey: t.apiKey,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("libretranslate request: %w", err)
	}
	if resp.IsError() {
		if out.Error != "" {
			return "", fmt.Errorf("libretranslate: %s: %s", resp.Status(), out.Error)
		}
		return "", fmt.Errorf("libretranslate: %s", resp.Status())
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("libretranslate: empty translation")
	}
	return out.TranslatedText, nil
}
