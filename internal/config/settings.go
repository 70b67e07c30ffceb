package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultRequestTimeout = 60 * time.Second
	DefaultProductName    = "SmartHealth Fitness Band"
)

// Settings holds the runtime configuration consumed once at startup.
type Settings struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout time.Duration
	DefaultProduct string
}

// LoadSettings reads the settings from the environment.
//
// Recognized variables: OPENAI_API_KEY, OPENAI_API_BASE, OPENAI_MODEL
// and OPENAI_REQUEST_TIMEOUT (a Go duration string such as "90s").
func LoadSettings() (Settings, error) {
	settings := Settings{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		BaseURL:        os.Getenv("OPENAI_API_BASE"),
		Model:          DefaultModel,
		RequestTimeout: DefaultRequestTimeout,
		DefaultProduct: DefaultProductName,
	}

	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		settings.Model = model
	}

	if raw := os.Getenv("OPENAI_REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid OPENAI_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		settings.RequestTimeout = timeout
	}

	return settings, nil
}

// Validate checks that the settings required to run the workflow are
// present. The workflow must not issue any generation call when this
// fails.
func (s Settings) Validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if s.Model == "" {
		return fmt.Errorf("model identifier must not be empty")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", s.RequestTimeout)
	}
	return nil
}
