// Package config loads application configuration from environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Supported generation providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the application configuration, loaded once at startup and
// passed into the components that need it. Request handling never reads the
// environment.
type Config struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	GitHubToken  string

	SecretKey       string
	SecretGenerated bool

	ListenAddr     string
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables and returns a
// validated Config. The API key for the selected generation provider
// (READMEFORGE_PROVIDER, default "gemini") is required; the process must not
// serve traffic without it. GITHUB_TOKEN is optional and only raises rate
// limits. SECRET_KEY is generated when absent, which invalidates sessions
// across restarts.
func Load() (*Config, error) {
	provider := getEnv("READMEFORGE_PROVIDER", ProviderGemini)
	if provider != ProviderGemini && provider != ProviderOpenAI {
		return nil, fmt.Errorf("READMEFORGE_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, provider)
	}

	cfg := &Config{
		Provider:     provider,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-pro"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
	}

	cfg.RequestTimeout = 60 * time.Second
	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok && v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_TIMEOUT has invalid duration %q: %w", v, err)
		}
		cfg.RequestTimeout = parsed
	}

	switch provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when READMEFORGE_PROVIDER is %q", ProviderGemini)
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when READMEFORGE_PROVIDER is %q", ProviderOpenAI)
		}
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = randomSecret()
		cfg.SecretGenerated = true
	}

	return cfg, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("config: failed to generate secret key: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
