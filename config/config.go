package config

import (
	"errors"
	"os"
)

const (
	// DefaultModel is used when GENAI_MODEL is not set.
	DefaultModel = "gemini-1.5-flash"
	DefaultPort  = "8080"
)

// ErrMissingAPIKey is returned by Load when GOOGLE_API_KEY is empty.
var ErrMissingAPIKey = errors.New("missing GOOGLE_API_KEY")

// Config holds everything the server reads from the environment at startup.
type Config struct {
	APIKey string
	Model  string
	Port   string
}

// Load reads the configuration from the process environment. It fails when
// the Gemini API key is absent so the server never starts without one.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey: os.Getenv("GOOGLE_API_KEY"),
		Model:  getenv("GENAI_MODEL", DefaultModel),
		Port:   getenv("PORT", DefaultPort),
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
