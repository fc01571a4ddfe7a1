package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/advert-generator/internal/llm"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"api_key": "file-key",
		"model": "gemini-2.5-pro",
		"log_level": "debug",
		"log_format": "json"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "primary", env: map[string]string{"GEMINI_API_KEY": "primary", "API_KEY": "secondary"}, want: "primary"},
		{name: "secondary", env: map[string]string{"API_KEY": "secondary"}, want: "secondary"},
		{name: "none", env: map[string]string{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAPIKey(envMap(tt.env)))
		})
	}
}

func TestFromEnv(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"GEMINI_API_KEY": "env-key",
		"PORT":           "3000",
		"GEMINI_MODEL":   "gemini-2.5-flash-lite",
		"LOG_LEVEL":      "warn",
		"LOG_FORMAT":     "json",
	}))

	assert.Equal(t, Config{
		Port:      3000,
		APIKey:    "env-key",
		Model:     "gemini-2.5-flash-lite",
		LogLevel:  "warn",
		LogFormat: "json",
	}, cfg)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{"PORT": "eighty"}))
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "port"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "bad level", cfg: Config{LogLevel: "trace"}, wantErr: "log_level"},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	env := Config{APIKey: "env-key", LogLevel: "debug"}
	file := Config{Port: 9000, APIKey: "file-key", Model: "gemini-2.5-pro"}

	merged := env.MergeWithDefaults(file.MergeWithDefaults(Defaults()))

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "env-key", merged.APIKey)
	assert.Equal(t, "gemini-2.5-pro", merged.Model)
	assert.Equal(t, "debug", merged.LogLevel)
	assert.Equal(t, "console", merged.LogFormat)
}

func TestDefaults_NoAPIKey(t *testing.T) {
	d := Defaults()
	assert.Empty(t, d.APIKey)
	assert.Equal(t, 8080, d.Port)
	assert.Equal(t, "gemini-2.5-flash", d.Model)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Model: "gemini-2.5-pro"}
	llmCfg := cfg.LLMConfig()

	assert.Equal(t, "gemini-2.5-pro", llmCfg.GetModel(llm.TierStandard))
	assert.InDelta(t, 0.7, llmCfg.Temperature, 1e-6)

	empty := Config{}
	assert.Equal(t, "gemini-2.5-flash", empty.LLMConfig().GetModel(llm.TierStandard))
}
