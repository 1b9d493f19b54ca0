package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a translation engine. Translate the user's text from %s to %s. " +
	"Reply with the translation only, without quotes or commentary. " +
	"Keep markdown formatting and numbers unchanged."

// OpenAI translates with a chat completion model.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a translator. baseURL may be empty to use the OpenAI
// API; any OpenAI-compatible endpoint works.
func NewOpenAI(apiKey, baseURL, model string, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

func (t *OpenAI) Translate(ctx context.Context, text, sourceLang, destLang string) (string, error) {
	source := sourceLang
	if source == "" || source == "auto" {
		source = "the detected language"
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(systemPrompt, source, destLang)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai: empty translation")
	}
	return out, nil
}
