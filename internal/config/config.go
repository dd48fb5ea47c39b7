// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mathmentor/mathmentor/internal/llm"
)

// Config holds all server configuration.
type Config struct {
	Port        string
	FrontendURL string

	// DBPath overrides the default database location when set.
	DBPath string

	// SessionSecret signs the anonymous learner cookie. A random
	// secret is generated at startup when unset, which invalidates
	// existing cookies on restart.
	SessionSecret string

	// QuestionCount is the default number of questions per assessment.
	QuestionCount int

	LLM llm.Config
}

// Load reads configuration from environment variables. The LLM section
// prefers explicit MATHMENTOR_* settings and falls back to probing the
// standard provider key variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
		DBPath:        getEnv("MATHMENTOR_DB", ""),
		SessionSecret: getEnv("MATHMENTOR_SESSION_SECRET", ""),
		QuestionCount: getEnvInt("MATHMENTOR_QUESTION_COUNT", 5),
		LLM:           llm.ConfigFromEnv(),
	}

	if os.Getenv("MATHMENTOR_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks required fields. The LLM section is validated only
// when a provider was explicitly selected; otherwise the server runs
// without one.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.QuestionCount <= 0 {
		return fmt.Errorf("MATHMENTOR_QUESTION_COUNT must be > 0")
	}
	if os.Getenv("MATHMENTOR_LLM_PROVIDER") != "" {
		if err := c.LLM.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasProvider reports whether a usable model provider is configured.
func (c *Config) HasProvider() bool {
	return c.LLM.Validate() == nil && c.providerKeySet()
}

func (c *Config) providerKeySet() bool {
	switch c.LLM.Provider {
	case "openai":
		return c.LLM.OpenAI.APIKey != ""
	case "anthropic":
		return c.LLM.Anthropic.APIKey != ""
	case "gemini":
		return c.LLM.Gemini.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// IsDevelopment reports whether the server targets a local frontend.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
