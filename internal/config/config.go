// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Environment variable names recognized by FromEnv
const (
	EnvAPIKey         = "GEMINI_API_KEY"
	EnvMockMode       = "AI_MOCK_MODE"
	EnvRequestTimeout = "AI_REQUEST_TIMEOUT_SECONDS"
)

// Config represents the analyzer configuration. It can be loaded from a JSON
// file, from the environment, or both; all fields are optional and unset
// values fall back to defaults.
type Config struct {
	// APIKey authenticates against the generative-AI provider. Unused in
	// mock mode.
	APIKey string `json:"api_key,omitempty"`
	// MockMode serves canned AI responses instead of calling the provider
	MockMode bool `json:"mock_mode,omitempty"`
	// RequestTimeoutSeconds bounds a single provider call
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"`
	// Verbose prints detailed report boxes during CLI runs
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Call after
// godotenv.Load so a local .env participates.
func FromEnv() *Config {
	cfg := &Config{
		APIKey: os.Getenv(EnvAPIKey),
	}
	if v := os.Getenv(EnvMockMode); v != "" {
		cfg.MockMode, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeoutSeconds = seconds
		}
	}
	return cfg
}

// Merge returns a copy of c with unset fields filled from fallback
func (c *Config) Merge(fallback *Config) *Config {
	if fallback == nil {
		return c
	}
	result := *c
	if result.APIKey == "" {
		result.APIKey = fallback.APIKey
	}
	if !result.MockMode {
		result.MockMode = fallback.MockMode
	}
	if result.RequestTimeoutSeconds == 0 {
		result.RequestTimeoutSeconds = fallback.RequestTimeoutSeconds
	}
	if !result.Verbose {
		result.Verbose = fallback.Verbose
	}
	return &result
}

// Validate checks that the configuration has usable values
func (c *Config) Validate() error {
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'request_timeout_seconds' must be non-negative")
	}
	if !c.MockMode && c.APIKey == "" {
		return fmt.Errorf("config error: an API key is required unless mock mode is enabled")
	}
	return nil
}

// RequestTimeout returns the configured timeout as a duration, or zero when
// unset (callers apply their own default)
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
