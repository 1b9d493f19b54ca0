package translate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/swasth-ai/internal/config"
	"github.com/msomdec/swasth-ai/internal/translate"
)

func TestIdentity(t *testing.T) {
	out, err := translate.Identity{}.Translate(context.Background(), "bukhar", "auto", "en")

	require.NoError(t, err)
	assert.Equal(t, "bukhar", out)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Translate
		want    any
		wantErr bool
	}{
		{"none", config.Translate{Provider: config.ProviderNone}, translate.Identity{}, false},
		{"empty", config.Translate{}, translate.Identity{}, false},
		{"libretranslate", config.Translate{Provider: config.ProviderLibreTranslate, LibreTranslateURL: "http://localhost:5000", Timeout: time.Second}, &translate.LibreTranslate{}, false},
		{"openai", config.Translate{Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4o-mini"}, &translate.OpenAI{}, false},
		{"openai without key", config.Translate{Provider: config.ProviderOpenAI}, nil, true},
		{"unknown", config.Translate{Provider: "babelfish"}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := translate.New(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.want, tr)
		})
	}
}
