// Package intent loads the static intent list and matches user messages
// against it.
package intent

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/msomdec/swasth-ai/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/health_data.json
var defaultData []byte

// Supported formats for Parse.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// file is the on-disk layout shared by every format.
type file struct {
	Intents []domain.Intent `json:"intents" yaml:"intents" toml:"intents"`
}

// Load reads the intents file at path, or the built-in health intents when
// path is empty. It never fails: a file that cannot be read or parsed
// yields an empty intent list and an error log.
func Load(path string) []domain.Intent {
	if path == "" {
		intents, err := Parse(defaultData, FormatJSON)
		if err != nil {
			slog.Error("parse built-in intents", "error", err)
			return []domain.Intent{}
		}
		return intents
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("read intents file", "path", path, "error", err)
		return []domain.Intent{}
	}

	intents, err := Parse(data, FormatFromPath(path))
	if err != nil {
		slog.Error("parse intents file", "path", path, "error", err)
		return []domain.Intent{}
	}

	slog.Info("intents loaded", "path", path, "count", len(intents))
	return intents
}

// FormatFromPath maps a file extension to a Parse format.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}

// Parse decodes intents in the given format and normalizes them: patterns
// are lower-cased, blank patterns are dropped, and intents left without a
// pattern or a response are dropped.
func Parse(data []byte, format string) ([]domain.Intent, error) {
	var f file
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported intents format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s intents: %w", format, err)
	}

	intents := make([]domain.Intent, 0, len(f.Intents))
	for i, in := range f.Intents {
		patterns := make([]string, 0, len(in.Patterns))
		for _, p := range in.Patterns {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				slog.Warn("dropping blank intent pattern", "intent", i)
				continue
			}
			patterns = append(patterns, p)
		}

		if len(patterns) == 0 || len(in.Responses) == 0 {
			slog.Warn("dropping incomplete intent", "intent", i,
				"patterns", len(patterns), "responses", len(in.Responses))
			continue
		}

		intents = append(intents, domain.Intent{
			Patterns:  patterns,
			Responses: in.Responses,
		})
	}
	return intents, nil
}
