package translate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/swasth-ai/internal/translate"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newCompletionServer(t *testing.T, content string, got *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}

		choices := []map[string]any{}
		if content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": choices,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAI_Translate(t *testing.T) {
	var got chatRequest
	srv := newCompletionServer(t, "  Descansa e hidrátate.\n", &got)

	tr := translate.NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o-mini", srv.Client())
	out, err := tr.Translate(context.Background(), "Rest and hydrate.", "en", "es")

	require.NoError(t, err)
	assert.Equal(t, "Descansa e hidrátate.", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "from en to es")
	assert.Equal(t, "Rest and hydrate.", got.Messages[1].Content)
}

func TestOpenAI_AutoSource(t *testing.T) {
	var got chatRequest
	srv := newCompletionServer(t, "I have a fever", &got)

	tr := translate.NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o-mini", srv.Client())
	_, err := tr.Translate(context.Background(), "tengo fiebre", "auto", "en")

	require.NoError(t, err)
	assert.Contains(t, got.Messages[0].Content, "from the detected language to en")
}

func TestOpenAI_NoChoices(t *testing.T) {
	srv := newCompletionServer(t, "", nil)

	tr := translate.NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o-mini", srv.Client())
	_, err := tr.Translate(context.Background(), "hola", "auto", "en")

	assert.Error(t, err)
}

func TestOpenAI_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	tr := translate.NewOpenAI("sk-test", srv.URL+"/v1", "gpt-4o-mini", srv.Client())
	_, err := tr.Translate(context.Background(), "hola", "auto", "en")

	assert.Error(t, err)
}
