// Package config provides configuration loading and validation for the advert server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/advert-generator/internal/llm"
)

// Environment variables read by FromEnv
const (
	EnvAPIKey         = "GEMINI_API_KEY"
	EnvAPIKeyFallback = "API_KEY"
	EnvPort           = "PORT"
	EnvModel          = "GEMINI_MODEL"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
)

// Config represents the server configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port      int    `json:"port,omitempty"`       // HTTP port
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Gemini model name
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console
}

// Defaults returns the built-in configuration. There is no default API key.
func Defaults() Config {
	return Config{
		Port:      8080,
		Model:     llm.DefaultConfig().GetModel(llm.TierStandard),
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv reads configuration from the environment through lookup
// (os.Getenv in production). The API key comes from GEMINI_API_KEY,
// falling back to API_KEY.
func FromEnv(lookup func(string) string) Config {
	cfg := Config{
		APIKey:    ResolveAPIKey(lookup),
		Model:     lookup(EnvModel),
		LogLevel:  lookup(EnvLogLevel),
		LogFormat: lookup(EnvLogFormat),
	}
	if port, err := strconv.Atoi(lookup(EnvPort)); err == nil {
		cfg.Port = port
	}
	return cfg
}

// ResolveAPIKey returns the primary key if set, otherwise the secondary one.
func ResolveAPIKey(lookup func(string) string) string {
	if key := lookup(EnvAPIKey); key != "" {
		return key
	}
	return lookup(EnvAPIKeyFallback)
}

// Validate checks that the configuration has valid values.
// A missing API key is not an error here; generation reports it on submit.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q", c.LogFormat)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// The receiver wins wherever it has a value.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// LLMConfig returns the model configuration with the configured model on the standard tier.
func (c *Config) LLMConfig() *llm.Config {
	base := llm.DefaultConfig()
	if c.Model == "" {
		return base
	}
	return base.WithModel(llm.TierStandard, c.Model)
}
