// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Translation providers accepted in TRANSLATE_PROVIDER.
const (
	ProviderNone           = "none"
	ProviderLibreTranslate = "libretranslate"
	ProviderOpenAI         = "openai"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"swasth-ai.db"`
	JWTSecret    string `env:"JWT_SECRET,required"`

	// Secure cookies by default; set COOKIE_SECURE=false for plain-HTTP local development.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"true"`
	// Set only behind a reverse proxy that overwrites X-Forwarded-For.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	BcryptCost        int  `env:"BCRYPT_COST" envDefault:"12"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Empty means the intents compiled into the binary.
	IntentsPath string `env:"INTENTS_PATH"`

	ChatRatePerMinute int `env:"CHAT_RATE_PER_MINUTE" envDefault:"30"`

	Translate Translate
}

// Translate selects and configures the translation backend.
type Translate struct {
	Provider string        `env:"TRANSLATE_PROVIDER" envDefault:"none"`
	Timeout  time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"5s"`

	LibreTranslateURL    string `env:"LIBRETRANSLATE_URL" envDefault:"http://localhost:5000"`
	LibreTranslateAPIKey string `env:"LIBRETRANSLATE_API_KEY"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads .env (if present) and the process environment, then validates
// the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Translate.Provider = strings.ToLower(strings.TrimSpace(cfg.Translate.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns the first configuration problem found.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if c.ChatRatePerMinute <= 0 {
		return fmt.Errorf("CHAT_RATE_PER_MINUTE must be positive, got %d", c.ChatRatePerMinute)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.Translate.Provider {
	case ProviderNone, ProviderLibreTranslate:
	case ProviderOpenAI:
		if c.Translate.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when TRANSLATE_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown TRANSLATE_PROVIDER %q", c.Translate.Provider)
	}
	if c.Translate.Timeout <= 0 {
		return fmt.Errorf("TRANSLATE_TIMEOUT must be positive, got %s", c.Translate.Timeout)
	}
	return nil
}

// ParseLogLevel maps LOG_LEVEL values to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
