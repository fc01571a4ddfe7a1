package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "RATE_LIMIT_DEFAULT_WINDOW"
	EnvGenerateLimit   = "RATE_LIMIT_GENERATE_LIMIT"
	EnvGenerateWindow  = "RATE_LIMIT_GENERATE_WINDOW"
	EnvCleanupInterval = "RATE_LIMIT_CLEANUP_INTERVAL"
	EnvWhitelist       = "RATE_LIMIT_WHITELIST"
	EnvBlacklist       = "RATE_LIMIT_BLACKLIST"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from the process environment.
func LoadConfig() *Config {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom loads rate limiting configuration through lookup.
func LoadConfigFrom(lookup func(string) string) *Config {
	env := envReader(lookup)
	if !env.getBool(EnvEnabled, true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.getInt(EnvDefaultLimit, 600),
		DefaultWindow:   env.getDuration(EnvDefaultWindow, time.Minute),
		CleanupInterval: env.getDuration(EnvCleanupInterval, 5*time.Minute),
		Whitelist:       parseIPList(env.getString(EnvWhitelist, "")),
		Blacklist:       parseIPList(env.getString(EnvBlacklist, "")),
		EndpointConfigs: DefaultEndpointConfigs(
			env.getInt(EnvGenerateLimit, 30),
			env.getDuration(EnvGenerateWindow, time.Hour),
		),
	}
}

// GeneratePath keys the generation tier. The JSON API is charged by path;
// the form page charges it explicitly when its generate action runs, so
// plain form updates stay on the default tier.
const GeneratePath = "/api/generate"

// DefaultEndpointConfigs returns the endpoint-specific limits.
func DefaultEndpointConfigs(generateLimit int, generateWindow time.Duration) []EndpointConfig {
	return []EndpointConfig{
		{Path: GeneratePath, Method: "POST", Limit: generateLimit, Window: generateWindow, Burst: max(1, generateLimit/10)},
	}
}

type envReader func(string) string

func (e envReader) getString(key, defaultValue string) string {
	if value := e(key); value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(e(key)); err == nil {
		return v
	}
	return defaultValue
}

func (e envReader) getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(e(key)); err == nil {
		return v
	}
	return defaultValue
}

func (e envReader) getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(e(key)); err == nil {
		return v
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
